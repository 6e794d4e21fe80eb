package langserver

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsReadWriteCloser adapts a *websocket.Conn to io.ReadWriteCloser so a
// browser-side client can drive the same jsonrpc2 handler stdio/TCP use,
// framing each Write as one text message and buffering Read across message
// boundaries.
type wsReadWriteCloser struct {
	conn *websocket.Conn
	buf  []byte
}

func (w *wsReadWriteCloser) Read(p []byte) (int, error) {
	for len(w.buf) == 0 {
		_, msg, err := w.conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		w.buf = msg
	}
	n := copy(p, w.buf)
	w.buf = w.buf[n:]
	return n, nil
}

func (w *wsReadWriteCloser) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsReadWriteCloser) Close() error {
	return w.conn.Close()
}

// ListenAndServeWebsocket upgrades HTTP connections to websockets at path
// "/" on addr and runs one language server instance per connection.
func ListenAndServeWebsocket(addr string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("sicxe language server: upgrade failed:", err)
			return
		}
		go Serve(&wsReadWriteCloser{conn: conn})
	})

	log.Printf("sicxe language server: listening for websocket connections on %s", addr)
	return http.ListenAndServe(addr, nil)
}
