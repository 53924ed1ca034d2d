package retroarch

import (
	"net"
	"testing"
	"time"
)

// scriptedPeer answers each datagram with the canned reply, or stays silent
// when the reply is empty.
func scriptedPeer(t *testing.T, reply string) string {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	go func() {
		buf := make([]byte, 1024)
		for {
			_, addr, err := conn.ReadFrom(buf)
			if err != nil {
				return
			}
			if reply != "" {
				conn.WriteTo([]byte(reply), addr)
			}
		}
	}()
	return conn.LocalAddr().String()
}

func TestSendRecvRoundTrip(t *testing.T) {
	addr := scriptedPeer(t, "GET_INFO CONTENT_LOADED,sml.gb")
	c := New(addr)
	reply, err := c.SendRecv(GetInfo())
	if err != nil {
		t.Fatalf("sendrecv: %v", err)
	}
	if reply != "GET_INFO CONTENT_LOADED,sml.gb" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestSendRecvTimeoutIsNotAnError(t *testing.T) {
	addr := scriptedPeer(t, "")
	c := New(addr)
	c.timeout = 50 * time.Millisecond
	reply, err := c.SendRecv(GetInfo())
	if err != nil {
		t.Fatalf("expected silent peer tolerated, got %v", err)
	}
	if reply != "" {
		t.Fatalf("expected no reply, got %q", reply)
	}
}

func TestSendFireAndForget(t *testing.T) {
	addr := scriptedPeer(t, "")
	c := New(addr)
	if err := c.Send(SaveStateSlot(0)); err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestCommandStrings(t *testing.T) {
	cases := []struct {
		cmd  Command
		want string
	}{
		{SaveStateSlot(0), "SAVE_STATE_SLOT 0"},
		{LoadStateSlot(3), "LOAD_STATE_SLOT 3"},
		{SetStateSlot(-1), "SET_STATE_SLOT -1"},
		{SetDiskSlot(2), "SET_DISK_SLOT 2"},
		{Quit(), "QUIT"},
		{Pause(), "PAUSE"},
	}
	for _, tc := range cases {
		if string(tc.cmd) != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, tc.cmd)
		}
	}
}

func TestParseInfo(t *testing.T) {
	info, ok := ParseInfo("GET_INFO PAUSED,Super Mario Land.gb")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if info.State != "PAUSED" || info.Content != "Super Mario Land.gb" {
		t.Fatalf("unexpected info %+v", info)
	}
	if !info.Paused() {
		t.Fatalf("expected paused")
	}
}

func TestParseInfoUnknownShapeIgnored(t *testing.T) {
	if _, ok := ParseInfo("garbage"); ok {
		t.Fatalf("expected unknown reply rejected")
	}
	if _, ok := ParseInfo(""); ok {
		t.Fatalf("expected empty reply rejected")
	}
}

func TestParseSlot(t *testing.T) {
	slot, ok := ParseSlot("GET_STATE_SLOT 2")
	if !ok || slot != 2 {
		t.Fatalf("expected slot 2, got %d ok=%v", slot, ok)
	}
	if _, ok := ParseSlot("GET_STATE_SLOT x"); ok {
		t.Fatalf("expected malformed slot rejected")
	}
}
