package server

import (
	"encoding/json"
	"strconv"
	"sync"
)

// Review events go to this topic; team-scoped copies go to teamTopic(id).
const reviewTopic = "review"

func teamTopic(teamID int64) string {
	return "team:" + strconv.FormatInt(teamID, 10)
}

// Event is the payload published to review-panel and team subscribers.
type Event struct {
	Type         string `json:"type"`
	SubmissionID int64  `json:"submission_id,omitempty"`
	TeamID       int64  `json:"team_id,omitempty"`
	QuestionID   int64  `json:"question_id,omitempty"`
	Rating       *int   `json:"rating,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by topic.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the topic.
func (b *Broker) Subscribe(topic string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[chan []byte]struct{})
	}
	b.subs[topic][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the topic's subscribers.
func (b *Broker) Unsubscribe(topic string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[topic], ch)
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the topic.
func (b *Broker) Publish(topic string, event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[topic] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
