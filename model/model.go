/*
Package model provides the domain-specific data models for a conversation.
*/
package model

import (
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind of content carried by a message.
type Kind uint8

const (
	Text Kind = iota
	Image
	Video
	Audio
	File
	Location
)

// String converts a kind into a printable representation.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Image:
		return "image"
	case Video:
		return "video"
	case Audio:
		return "audio"
	case File:
		return "file"
	case Location:
		return "location"
	default:
		return "unknown kind"
	}
}

// LinkPreview describes the preview of the first link of a text message.
type LinkPreview struct {
	Title string
	URL   string
}

// Attachment describes the asset of a media or file message.
type Attachment struct {
	Name     string
	MIMEType string
	Bytes    int64
	// Size is the pixel size of images and videos.
	Size image.Point
	// Duration of audio and video assets.
	Duration time.Duration
	// Downloaded reports whether the asset is available locally.
	Downloaded bool
	// Playing and Progress are the playback state of audio assets, as
	// reported by the media player.
	Playing  bool
	Progress float32
}

// Place is the content of a location message.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
	Zoom      int
}

// Message represents a conversation message.
//
// Content fields are plain data set when the message is built. The
// self-destruction state is synchronized, since the messaging SDK may
// update it from any goroutine.
type Message struct {
	ID     uuid.UUID
	Kind   Kind
	Sender string
	SentAt time.Time
	// Local reports whether the message was sent by the local user.
	Local bool
	// Obfuscated messages had their ephemeral timer run out and only show
	// a placeholder.
	Obfuscated bool

	Text       string
	Preview    *LinkPreview
	Attachment *Attachment
	Place      *Place

	// Timeout is the lifetime of an ephemeral message once it has been seen.
	// A zero timeout means the message is not ephemeral.
	Timeout time.Duration
	// Now is the clock used for the countdown. Defaults to time.Now.
	Now func() time.Time

	mu         sync.Mutex
	destructAt time.Time
}

// New allocates a message of the given kind with a fresh ID.
func New(kind Kind, sender string, sentAt time.Time) *Message {
	return &Message{
		ID:     uuid.New(),
		Kind:   kind,
		Sender: sender,
		SentAt: sentAt,
	}
}

// IsEphemeral reports whether the message destroys itself after being seen.
func (m *Message) IsEphemeral() bool {
	return m.Timeout > 0
}

// StartSelfDestructionIfNeeded starts the countdown of an ephemeral message.
// Only the first call for an ephemeral message starts it and reports true.
func (m *Message) StartSelfDestructionIfNeeded() bool {
	if !m.IsEphemeral() {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.destructAt.IsZero() {
		return false
	}
	m.destructAt = m.now().Add(m.Timeout)
	return true
}

// DestructAt returns the deadline of the countdown and whether it has been
// started.
func (m *Message) DestructAt() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destructAt, !m.destructAt.IsZero()
}

// Remaining returns the time left before the message destroys itself. It is
// zero for messages whose countdown has not started or has run out.
func (m *Message) Remaining(now time.Time) time.Duration {
	at, started := m.DestructAt()
	if !started || !now.Before(at) {
		return 0
	}
	return at.Sub(now)
}

// Expired reports whether the countdown has run out.
func (m *Message) Expired(now time.Time) bool {
	at, started := m.DestructAt()
	return started && !now.Before(at)
}

func (m *Message) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}
