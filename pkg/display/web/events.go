package web

// Type is the first byte of every message sent to a client.
type Type = uint8

const (
	// Frame carries a cache slot (uint16) followed by a full
	// RGBA frame, which the client should store in that slot.
	Frame Type = iota
	// FrameCache carries the cache slot (uint16) of a frame the
	// client has already been sent.
	FrameCache
	// FrameSkip carries the number of frames (uint32) that were
	// identical to the previous one and so weren't sent.
	FrameSkip
	// ClientInfo carries the ID assigned to the client.
	ClientInfo
	// ServerInfo carries an (ID, latency in ms as uint16) pair
	// for every connected client.
	ServerInfo
)

// Closing is sent by a client that is about to disconnect. Any
// other message from a client is a two byte key event: the
// joypad.Button followed by 1 for pressed or 0 for released.
const Closing = 255
