package websocket

// Serve registers client and pumps its connection until it closes.
func Serve(client *Client) {
	client.Hub.Register(client)

	go client.writePump()
	client.readPump()
}
