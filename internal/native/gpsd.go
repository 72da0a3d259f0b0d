package native

import (
	"bufio"
	"encoding/json"
	"io"
	"net"
	"time"
)

// defaultGPSDAddr is where the gpsd daemon listens on Linux hosts.
const defaultGPSDAddr = "localhost:2947"

// gpsdStrategy obtains a fix from a local gpsd daemon over its JSON
// protocol. The flow mirrors the other strategies: one bounded read for a
// fix after enabling the watch, then a single explicit ?POLL and one more
// bounded read. No daemon, no GPS device, or no satellite lock all read as
// unavailable.
type gpsdStrategy struct {
	addr string
}

func newGPSDStrategy(addr string) gpsdStrategy {
	return gpsdStrategy{addr: addr}
}

func (g gpsdStrategy) Name() string {
	return "gpsd"
}

// gpsdReport covers the report classes this strategy cares about: TPV
// (time-position-velocity) pushed by the watch, and POLL which embeds TPV
// reports in response to ?POLL.
type gpsdReport struct {
	Class string       `json:"class"`
	Mode  int          `json:"mode"`
	Lat   float64      `json:"lat"`
	Lon   float64      `json:"lon"`
	TPV   []gpsdReport `json:"tpv"`
}

func (g gpsdStrategy) Coordinates() (float64, float64, bool) {
	conn, err := net.DialTimeout("tcp", g.addr, permissionWait)
	if err != nil {
		return 0, 0, false
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)

	if _, err := io.WriteString(conn, `?WATCH={"enable":true,"json":true};`+"\n"); err != nil {
		return 0, 0, false
	}

	// First query: wait for a fix pushed by the watch.
	if lat, lon, ok := g.awaitFix(conn, reader); ok {
		return lat, lon, true
	}

	// No fix yet: request a fresh report once and wait again.
	if _, err := io.WriteString(conn, "?POLL;\n"); err != nil {
		return 0, 0, false
	}
	return g.awaitFix(conn, reader)
}

// awaitFix reads reports until a usable fix arrives or the bounded wait
// expires. A usable fix has a 2D or better mode and non-zero coordinates.
func (g gpsdStrategy) awaitFix(conn net.Conn, reader *bufio.Reader) (float64, float64, bool) {
	if err := conn.SetReadDeadline(time.Now().Add(updateWait)); err != nil {
		return 0, 0, false
	}

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return 0, 0, false
		}

		var report gpsdReport
		if err := json.Unmarshal(line, &report); err != nil {
			continue
		}

		candidates := []gpsdReport{report}
		if report.Class == "POLL" {
			candidates = report.TPV
		}
		for _, r := range candidates {
			if r.Class != "TPV" && report.Class != "POLL" {
				continue
			}
			if r.Mode < 2 {
				continue
			}
			if r.Lat == 0 && r.Lon == 0 {
				continue
			}
			return r.Lat, r.Lon, true
		}
	}
}
