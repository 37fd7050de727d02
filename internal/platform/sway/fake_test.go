package sway

import (
	"encoding/binary"
	"io"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	msgRunCommand  uint32 = 0
	msgSubscribe   uint32 = 2
	msgGetTree     uint32 = 4
	msgGetVersion  uint32 = 7
	eventWindow    uint32 = 1<<31 | 3
	eventShutdown  uint32 = 1<<31 | 6
	ipcMagic              = "i3-ipc"
	ipcHeaderBytes        = len(ipcMagic) + 8
)

type request struct {
	Type    uint32
	Payload string
}

// fakeCompositor serves the IPC protocol on a unix socket in a temp dir.
type fakeCompositor struct {
	path    string
	ln      net.Listener
	replies map[uint32][]byte

	// requests records non-subscribe requests in arrival order.
	requests chan request
	// subscribers receives each connection once its subscribe reply is sent.
	subscribers chan *subscriber

	mu    sync.Mutex
	conns []net.Conn
}

type subscriber struct {
	conn   net.Conn
	events string
}

func newFakeCompositor(t *testing.T, replies map[uint32][]byte) *fakeCompositor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ipc.sock")
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	f := &fakeCompositor{
		path:        path,
		ln:          ln,
		replies:     replies,
		requests:    make(chan request, 16),
		subscribers: make(chan *subscriber, 4),
	}
	go f.accept()
	t.Cleanup(f.close)
	return f
}

func (f *fakeCompositor) accept() {
	for {
		c, err := f.ln.Accept()
		if err != nil {
			return
		}
		f.mu.Lock()
		f.conns = append(f.conns, c)
		f.mu.Unlock()
		go f.serve(c)
	}
}

func (f *fakeCompositor) serve(c net.Conn) {
	for {
		typ, payload, err := readMessage(c)
		if err != nil {
			return
		}
		if typ == msgSubscribe {
			if err := writeMessage(c, typ, []byte(`{"success":true}`)); err != nil {
				return
			}
			f.subscribers <- &subscriber{conn: c, events: string(payload)}
			return
		}
		f.requests <- request{Type: typ, Payload: string(payload)}
		if err := writeMessage(c, typ, f.replies[typ]); err != nil {
			return
		}
	}
}

func (f *fakeCompositor) close() {
	f.ln.Close()
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.conns {
		c.Close()
	}
}

// emit writes an event frame to a subscribed connection.
func (s *subscriber) emit(t *testing.T, typ uint32, payload string) {
	t.Helper()
	require.NoError(t, writeMessage(s.conn, typ, []byte(payload)))
}

func writeMessage(w io.Writer, typ uint32, payload []byte) error {
	buf := make([]byte, ipcHeaderBytes+len(payload))
	copy(buf, ipcMagic)
	binary.LittleEndian.PutUint32(buf[len(ipcMagic):], uint32(len(payload)))
	binary.LittleEndian.PutUint32(buf[len(ipcMagic)+4:], typ)
	copy(buf[ipcHeaderBytes:], payload)
	_, err := w.Write(buf)
	return err
}

func readMessage(r io.Reader) (uint32, []byte, error) {
	var header [ipcHeaderBytes]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	size := binary.LittleEndian.Uint32(header[len(ipcMagic):])
	typ := binary.LittleEndian.Uint32(header[len(ipcMagic)+4:])
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return typ, payload, nil
}
