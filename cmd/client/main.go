// Command client is a minimal interactive WebSocket client for manually
// driving a holdem-rooms server from a terminal: it dials /ws, prints
// every event frame it receives, and turns simple stdin commands into
// protocol frames.
package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-rooms/internal/protocol"
)

var cli struct {
	Addr    string `kong:"default='localhost:8080',help='Server address'"`
	User    string `kong:"default='player1',help='Self-asserted client_msg_id'"`
	TableID string `kong:"default='table1',help='Table id to create/join'"`
}

func main() {
	kong.Parse(&cli)

	u := url.URL{Scheme: "ws", Host: cli.Addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dial:", err)
		os.Exit(1)
	}
	defer conn.Close()

	go printEvents(conn)

	fmt.Println("commands: create | join | leave | ready <0|1> | rebuy | action <fold|check|call|raise> [amount]")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !handleCommand(conn, scanner.Text()) {
			break
		}
	}
}

func printEvents(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Fprintln(os.Stderr, "connection closed:", err)
			os.Exit(0)
		}
		fmt.Println(string(data))
	}
}

func handleCommand(conn *websocket.Conn, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	var frame any
	switch fields[0] {
	case "create":
		frame = protocol.CreateRoom{Type: protocol.TypeCreateRoom, TableID: cli.TableID, ClientMsgID: cli.User}
	case "join":
		frame = protocol.JoinRoom{Type: protocol.TypeJoinRoom, TableID: cli.TableID, ClientMsgID: cli.User}
	case "leave":
		frame = protocol.LeaveRoom{Type: protocol.TypeLeaveRoom, TableID: cli.TableID, ClientMsgID: cli.User}
	case "ready":
		ready := len(fields) > 1 && fields[1] == "1"
		frame = protocol.Ready{Type: protocol.TypeReady, TableID: cli.TableID, ClientMsgID: cli.User, Ready: ready}
	case "rebuy":
		frame = protocol.Rebuy{Type: protocol.TypeRebuy, TableID: cli.TableID, ClientMsgID: cli.User}
	case "action":
		if len(fields) < 2 {
			fmt.Fprintln(os.Stderr, "usage: action <fold|check|call|raise> [amount]")
			return true
		}
		amount := 0
		if len(fields) > 2 {
			amount, _ = strconv.Atoi(fields[2])
		}
		frame = protocol.Action{Type: protocol.TypeAction, TableID: cli.TableID, Action: fields[1], Amount: amount, ClientMsgID: cli.User}
	case "quit", "exit":
		return false
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", fields[0])
		return true
	}

	data, err := protocol.Encode(frame)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		return true
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		return false
	}
	return true
}
