package retroarch

import (
	"strconv"
	"strings"

	"github.com/xXJSONDeruloXx/Allium/internal/logging"
)

// Info is the parsed GET_INFO reply.
type Info struct {
	// State is the first status token, e.g. "CONTENT_LOADED" or "PAUSED".
	State string
	// Content is the loaded content name, when reported.
	Content string
}

// Paused reports whether the emulator says it is paused.
func (i Info) Paused() bool { return i.State == "PAUSED" }

// ParseInfo decodes a GET_INFO reply of the shape
// "GET_INFO <STATE>,<content>". Unknown shapes are logged and reported as
// absent rather than failing the caller.
func ParseInfo(reply string) (Info, bool) {
	fields := strings.Fields(reply)
	if len(fields) < 2 || fields[0] != string(GetInfo()) {
		if reply != "" {
			logging.Warnf("retroarch: unexpected GET_INFO reply %q", reply)
		}
		return Info{}, false
	}
	rest := strings.Join(fields[1:], " ")
	parts := strings.SplitN(rest, ",", 2)
	info := Info{State: parts[0]}
	if len(parts) > 1 {
		info.Content = parts[1]
	}
	return info, true
}

// ParseSlot decodes a GET_STATE_SLOT / GET_DISK_SLOT reply of the shape
// "<VERB> <n>".
func ParseSlot(reply string) (int, bool) {
	fields := strings.Fields(reply)
	if len(fields) != 2 {
		if reply != "" {
			logging.Warnf("retroarch: unexpected slot reply %q", reply)
		}
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		logging.Warnf("retroarch: unexpected slot reply %q", reply)
		return 0, false
	}
	return n, true
}

// QueryInfo runs GET_INFO against the controller. A silent peer yields
// (Info{}, false, nil).
func QueryInfo(c Controller) (Info, bool, error) {
	reply, err := c.SendRecv(GetInfo())
	if err != nil {
		return Info{}, false, err
	}
	if reply == "" {
		return Info{}, false, nil
	}
	info, ok := ParseInfo(reply)
	return info, ok, nil
}

// QueryStateSlot runs GET_STATE_SLOT against the controller.
func QueryStateSlot(c Controller) (int, bool, error) {
	reply, err := c.SendRecv(GetStateSlot())
	if err != nil {
		return 0, false, err
	}
	if reply == "" {
		return 0, false, nil
	}
	slot, ok := ParseSlot(reply)
	return slot, ok, nil
}
