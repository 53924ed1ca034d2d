// Package retroarch drives the running emulator over its network command
// interface: single-datagram ASCII commands to a fixed loopback port. The
// peer may not be running at all, so every request is best-effort; a missing
// reply is an answer, not an error.
package retroarch

import (
	"fmt"
	"net"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/logging/events"
)

// DefaultAddr is RetroArch's network command port on the device.
const DefaultAddr = "127.0.0.1:55355"

// replyTimeout bounds how long SendRecv waits. Fixed rather than
// configurable: it reflects the device's settle time, not caller policy.
const replyTimeout = 500 * time.Millisecond

// Command is a single newline-free command string.
type Command string

// Command constructors mirror the emulator's verb set.
func Pause() Command              { return "PAUSE" }
func Unpause() Command            { return "UNPAUSE" }
func Quit() Command               { return "QUIT" }
func Reset() Command              { return "RESET" }
func MenuToggle() Command         { return "MENU_TOGGLE" }
func GetInfo() Command            { return "GET_INFO" }
func GetStateSlot() Command       { return "GET_STATE_SLOT" }
func GetDiskSlot() Command        { return "GET_DISK_SLOT" }
func SaveStateSlot(n int) Command { return Command(fmt.Sprintf("SAVE_STATE_SLOT %d", n)) }
func LoadStateSlot(n int) Command { return Command(fmt.Sprintf("LOAD_STATE_SLOT %d", n)) }
func SetStateSlot(n int) Command  { return Command(fmt.Sprintf("SET_STATE_SLOT %d", n)) }
func SetDiskSlot(n int) Command   { return Command(fmt.Sprintf("SET_DISK_SLOT %d", n)) }

// Controller is the request/response surface the handoff machine and the
// in-game menu depend on. Tests substitute a scripted peer.
type Controller interface {
	// Send fires the command without waiting for a reply.
	Send(cmd Command) error

	// SendRecv waits up to the reply timeout; it returns "" with a nil
	// error when the peer stayed silent.
	SendRecv(cmd Command) (string, error)
}

// Client is the UDP Controller implementation.
type Client struct {
	addr    string
	timeout time.Duration
	dial    func() (net.Conn, error)
}

// New returns a client for the given address; "" uses DefaultAddr.
func New(addr string) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	c := &Client{addr: addr, timeout: replyTimeout}
	c.dial = func() (net.Conn, error) { return net.Dial("udp", c.addr) }
	return c
}

// Send implements Controller.
func (c *Client) Send(cmd Command) error {
	conn, err := c.dial()
	if err != nil {
		return fmt.Errorf("dial emulator: %w", err)
	}
	defer conn.Close()
	events.RetroArch.Send(string(cmd))
	if _, err := conn.Write([]byte(cmd)); err != nil {
		return fmt.Errorf("send %s: %w", cmd, err)
	}
	return nil
}

// SendRecv implements Controller.
func (c *Client) SendRecv(cmd Command) (string, error) {
	conn, err := c.dial()
	if err != nil {
		return "", fmt.Errorf("dial emulator: %w", err)
	}
	defer conn.Close()
	events.RetroArch.Send(string(cmd))
	if _, err := conn.Write([]byte(cmd)); err != nil {
		return "", fmt.Errorf("send %s: %w", cmd, err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", fmt.Errorf("set deadline: %w", err)
	}
	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
			events.RetroArch.NoReply(string(cmd))
			return "", nil
		}
		return "", fmt.Errorf("recv %s: %w", cmd, err)
	}
	reply := string(buf[:n])
	events.RetroArch.Recv(string(cmd), reply)
	return reply, nil
}
