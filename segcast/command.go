package segcast

// A command is one actor mailbox message. Commands carry no payload;
// their meaning is their tag, and their ordering is the FIFO order of
// the channel.
type command uint8

const (
	cmdStart command = iota
	cmdStop
	cmdSegment
)

func (c command) String() string {
	switch c {
	case cmdStart:
		return "start"
	case cmdStop:
		return "stop"
	case cmdSegment:
		return "segment"
	}
	return "unknown"
}
