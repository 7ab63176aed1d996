package bridge

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
)

func editable(id, kind, label string) *element.Descriptor {
	d := element.NewDescriptor(id, kind, label)
	return &d
}

// page:
//
//	root
//	└── b (container "Hero")
//	    ├── a (title "Hero title")
//	    │   └── a-span
//	    └── b-plain
//	plain
func testLayout(t *testing.T) *element.Registry {
	t.Helper()
	r, err := element.NewRegistry([]element.Node{
		{ID: "root"},
		{ID: "b", ParentID: "root", Editable: editable("b", "section", "Hero")},
		{ID: "a", ParentID: "b", Editable: editable("a", "title", "Hero title")},
		{ID: "a-span", ParentID: "a"},
		{ID: "b-plain", ParentID: "b"},
		{ID: "plain", ParentID: "root"},
	})
	require.NoError(t, err)
	return r
}

type recorder struct {
	messages []Message
	feedback []Feedback
}

func newTestSurface(t *testing.T) (*Surface, *clock.FakeClock, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := clock.Fake(time.Unix(0, 0))
	s := NewSurface(
		PosterFunc(func(m Message) { rec.messages = append(rec.messages, m) }),
		func(f Feedback) { rec.feedback = append(rec.feedback, f) },
		c, 0,
	)
	s.SetLayout(testLayout(t))
	return s, c, rec
}

func TestSurface_TouchMovedBeforeLongPressSendsNothing(t *testing.T) {
	s, c, rec := newTestSurface(t)

	assert.True(t, s.Handle(Gesture{Type: GestureTouchStart, Target: "a"}))
	c.Advance(300 * time.Millisecond)
	s.Handle(Gesture{Type: GestureTouchMove, Target: "a"})
	s.Handle(Gesture{Type: GestureTouchEnd, Target: "a"})
	c.Advance(time.Second)

	assert.Empty(t, rec.messages)
	assert.Empty(t, rec.feedback)
	assert.False(t, s.Pending())
}

func TestSurface_LongPressSendsExactlyOneMessage(t *testing.T) {
	s, c, rec := newTestSurface(t)

	s.Handle(Gesture{Type: GestureTouchStart, Target: "a-span"})
	c.Advance(600 * time.Millisecond)
	s.Handle(Gesture{Type: GestureTouchEnd, Target: "a-span"})
	assert.False(t, s.Handle(Gesture{Type: GestureClick, Target: "a-span"}))

	require.Len(t, rec.messages, 1)
	assert.Equal(t, Message{
		Type:         EditSection,
		SectionID:    "a",
		SectionType:  element.KindTitle,
		SectionLabel: "Hero title",
	}, rec.messages[0])
	require.Len(t, rec.feedback, 1)
	assert.Equal(t, Feedback{ElementID: "a", Pulse: true, Haptic: true}, rec.feedback[0])
}

func TestSurface_ClickLongAfterLongPressIsItsOwnGesture(t *testing.T) {
	s, c, rec := newTestSurface(t)

	s.Handle(Gesture{Type: GestureTouchStart, Target: "a"})
	c.Advance(600 * time.Millisecond)
	s.Handle(Gesture{Type: GestureTouchEnd, Target: "a"})
	c.Advance(10 * time.Second)
	assert.True(t, s.Handle(Gesture{Type: GestureClick, Target: "b-plain"}))

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "a", rec.messages[0].SectionID)
	assert.Equal(t, "b", rec.messages[1].SectionID)
}

func TestSurface_ClickResolvesInnermostEditable(t *testing.T) {
	s, _, rec := newTestSurface(t)

	assert.True(t, s.Handle(Gesture{Type: GestureClick, Target: "a"}))
	assert.True(t, s.Handle(Gesture{Type: GestureClick, Target: "b-plain"}))

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "a", rec.messages[0].SectionID)
	assert.Equal(t, "b", rec.messages[1].SectionID)
	assert.Equal(t, element.KindContainer, rec.messages[1].SectionType)
	assert.False(t, rec.feedback[0].Haptic)
}

func TestSurface_IgnoresNonEditableTargets(t *testing.T) {
	tests := []struct {
		name    string
		gesture Gesture
	}{
		{name: "click on plain node", gesture: Gesture{Type: GestureClick, Target: "plain"}},
		{name: "click on root", gesture: Gesture{Type: GestureClick, Target: "root"}},
		{name: "click on unknown node", gesture: Gesture{Type: GestureClick, Target: "ghost"}},
		{name: "touch on plain node", gesture: Gesture{Type: GestureTouchStart, Target: "plain"}},
		{name: "unknown gesture", gesture: Gesture{Type: "wheel", Target: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c, rec := newTestSurface(t)

			assert.False(t, s.Handle(tt.gesture))
			c.Advance(time.Second)

			assert.Empty(t, rec.messages)
			assert.Empty(t, rec.feedback)
		})
	}
}

func TestSurface_WithoutLayout(t *testing.T) {
	var got []Message
	s := NewSurface(PosterFunc(func(m Message) { got = append(got, m) }), nil, clock.Fake(time.Unix(0, 0)), 0)

	assert.False(t, s.Handle(Gesture{Type: GestureClick, Target: "a"}))
	assert.Empty(t, got)
}

func TestSurface_SetLayoutCancelsPendingPress(t *testing.T) {
	s, c, rec := newTestSurface(t)

	s.Handle(Gesture{Type: GestureTouchStart, Target: "a"})
	s.SetLayout(testLayout(t))
	c.Advance(time.Second)

	assert.Empty(t, rec.messages)
}

func TestMessage_WireShape(t *testing.T) {
	m := NewEditSection(element.NewDescriptor("hero-cta", "", ""))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "ELENA_EDIT_SECTION",
		"sectionId": "hero-cta",
		"sectionType": "container",
		"sectionLabel": "hero-cta"
	}`, string(data))
	assert.Equal(t, element.NewDescriptor("hero-cta", "container", "hero-cta"), m.Descriptor())
}

func newTestChannel(t *testing.T, allowed ...string) *Channel {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	return NewChannel(pubSub, "bridge.test", allowed, nil)
}

func TestChannel_Allowed(t *testing.T) {
	c := newTestChannel(t, "https://shop.example.com/", " https://Preview.example.com")

	assert.True(t, c.Allowed("https://shop.example.com"))
	assert.True(t, c.Allowed("https://preview.example.com"))
	assert.False(t, c.Allowed("https://evil.example.com"))
	assert.False(t, c.Allowed(""))

	assert.True(t, newTestChannel(t, AnyOrigin).Allowed("https://anything.test"))
	assert.False(t, newTestChannel(t).Allowed("https://shop.example.com"))
}

func TestChannel_DeliversOnlyAllowedOrigins(t *testing.T) {
	c := newTestChannel(t, "https://shop.example.com")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Envelope, 4)
	require.NoError(t, c.Subscribe(ctx, func(env Envelope) { received <- env }))

	msg := NewEditSection(element.NewDescriptor("a", "title", "Hero title"))
	c.Poster("https://evil.example.com", "store-1:user-1").Post(msg)
	c.Poster("https://shop.example.com", "store-1:user-1").Post(msg)

	select {
	case env := <-received:
		assert.Equal(t, "https://shop.example.com", env.Origin)
		assert.Equal(t, "store-1:user-1", env.Target)
		assert.Equal(t, msg, env.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("message from allowed origin was not delivered")
	}

	select {
	case env := <-received:
		t.Fatalf("unexpected delivery from %s", env.Origin)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestChannel_PublishWithoutSubscriberDoesNotBlock(t *testing.T) {
	c := newTestChannel(t, AnyOrigin)

	done := make(chan error, 1)
	go func() {
		done <- c.Publish("https://shop.example.com", "t", NewEditSection(element.NewDescriptor("a", "", "")))
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}
