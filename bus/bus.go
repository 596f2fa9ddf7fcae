// bus.go
package bus

import (
	"sync"
)

// -----------------------------------------------------------------------------
// Topics
// -----------------------------------------------------------------------------

// Wildcards usable in subscription topics. "+" matches exactly one level,
// "#" matches the remaining levels (zero or more) and must come last.
const (
	Single = "+"
	Multi  = "#"
)

// Topic is a sequence of levels, e.g. T("render", "frame").
type Topic []string

func T(levels ...string) Topic { return Topic(levels) }

func (t Topic) String() string {
	s := ""
	for i, l := range t {
		if i > 0 {
			s += "/"
		}
		s += l
	}
	return s
}

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// deliver never blocks: a full queue drops its oldest message.
func (s *Subscription) deliver(msg *Message) {
	for {
		select {
		case s.ch <- msg:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// -----------------------------------------------------------------------------
// Trie node
// -----------------------------------------------------------------------------

type node struct {
	children map[string]*node
	subs     []*Subscription // subscriptions whose pattern ends here
	retained *Message        // retained message for the concrete topic ending here
}

func (n *node) child(level string, create bool) *node {
	if c, ok := n.children[level]; ok || !create {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c := &node{}
	n.children[level] = c
	return c
}

func (n *node) empty() bool {
	return len(n.subs) == 0 && len(n.children) == 0 && n.retained == nil
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

// Bus routes messages between services. Patterns and concrete topics share
// one trie: subscriptions hang off the pattern path, retained messages off
// the concrete path.
type Bus struct {
	mu   sync.Mutex
	root *node
	qLen int
}

// NewBus creates a new bus with the given subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{root: &node{}, qLen: queueLen}
}

func (b *Bus) NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

// Publish delivers msg to every matching subscription. A retained message
// replaces the stored one for its topic; a retained nil payload clears it.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Retained {
		b.retain(msg)
	}
	var subs []*Subscription
	collectSubs(b.root, msg.Topic, &subs)
	for _, s := range subs {
		s.deliver(msg)
	}
}

func (b *Bus) retain(msg *Message) {
	if msg.Payload != nil {
		n := b.root
		for _, l := range msg.Topic {
			n = n.child(l, true)
		}
		n.retained = msg
		return
	}
	path := []*node{b.root}
	n := b.root
	for _, l := range msg.Topic {
		if n = n.child(l, false); n == nil {
			return
		}
		path = append(path, n)
	}
	n.retained = nil
	prune(path, msg.Topic)
}

// collectSubs walks the pattern branches matching a concrete topic.
func collectSubs(n *node, topic Topic, out *[]*Subscription) {
	if h := n.child(Multi, false); h != nil {
		*out = append(*out, h.subs...)
	}
	if len(topic) == 0 {
		*out = append(*out, n.subs...)
		return
	}
	if c := n.child(topic[0], false); c != nil {
		collectSubs(c, topic[1:], out)
	}
	if c := n.child(Single, false); c != nil {
		collectSubs(c, topic[1:], out)
	}
}

// collectRetained walks the concrete branches matching a pattern.
func collectRetained(n *node, pattern Topic, out *[]*Message) {
	if len(pattern) == 0 {
		if n.retained != nil {
			*out = append(*out, n.retained)
		}
		return
	}
	switch pattern[0] {
	case Multi:
		var walk func(*node)
		walk = func(x *node) {
			if x.retained != nil {
				*out = append(*out, x.retained)
			}
			for _, c := range x.children {
				walk(c)
			}
		}
		walk(n)
	case Single:
		for _, c := range n.children {
			collectRetained(c, pattern[1:], out)
		}
	default:
		if c := n.child(pattern[0], false); c != nil {
			collectRetained(c, pattern[1:], out)
		}
	}
}

func (b *Bus) addSubscription(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, l := range sub.topic {
		n = n.child(l, true)
	}
	n.subs = append(n.subs, sub)

	var retained []*Message
	collectRetained(b.root, sub.topic, &retained)
	for _, m := range retained {
		sub.deliver(m)
	}
}

func (b *Bus) removeSubscription(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := []*node{b.root}
	n := b.root
	for _, l := range sub.topic {
		if n = n.child(l, false); n == nil {
			return
		}
		path = append(path, n)
	}
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}
	prune(path, sub.topic)
}

// prune drops empty nodes bottom-up; path[i+1] is the child of path[i] under topic[i].
func prune(path []*node, topic Topic) {
	for i := len(topic) - 1; i >= 0; i-- {
		if !path[i+1].empty() {
			return
		}
		delete(path[i].children, topic[i])
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

// Connection groups the subscriptions of one service so they can be torn
// down together.
type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

func (c *Connection) NewMessage(topic Topic, payload any, retained bool) *Message {
	return c.bus.NewMessage(topic, payload, retained)
}

func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	c.bus.addSubscription(sub)
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is a no-op.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.mu.Lock()
	found := false
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return
	}
	c.bus.removeSubscription(sub)
	close(sub.ch)
}

// Disconnect closes all subscriptions of the connection.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.removeSubscription(sub)
		close(sub.ch)
	}
}
