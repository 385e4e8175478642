package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nhooyr.io/websocket"
)

// wsprobe sends stdin lines to the server as text messages and prints
// everything the server sends back.
func main() {
	serverURL := flag.String("server-url", "ws://localhost:8765", "Game server websocket URL")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *serverURL, nil)
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	go func(conn *websocket.Conn, cancel context.CancelFunc) {
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				fmt.Println("Server disconnected:", err)
				cancel()
				return
			}
			fmt.Println("Server:", string(data))
		}
	}(conn, cancel)

	go func(conn *websocket.Conn, cancel context.CancelFunc) {
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("Enter message (type 'exit' to quit): ")
			if !scanner.Scan() {
				cancel()
				return
			}
			message := scanner.Text()
			if message == "exit" {
				fmt.Println("Received exit command, exiting.")
				cancel()
				return
			}

			if err := conn.Write(ctx, websocket.MessageText, []byte(message)); err != nil {
				fmt.Println("Error sending message to server:", err)
				return
			}
		}
	}(conn, cancel)

	// Gracefully handle Ctrl+C to stop the program
	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stopSignal:
		fmt.Println("Received stop signal, exiting.")
	case <-ctx.Done():
	}

	fmt.Println("Exiting probe.")
}
