package broadcast

import "testing"

func TestChannelDropsOldestWhenFull(t *testing.T) {
	ch := NewChannel[int](2)
	ch.Send(1)
	ch.Send(2)
	ch.Send(3)

	got := []int{<-ch.C(), <-ch.C()}
	if got[0] != 2 || got[1] != 3 {
		t.Errorf("received %v, expected [2 3]", got)
	}
}

func TestChannelSendAfterClose(t *testing.T) {
	ch := NewChannel[int](1)
	ch.Close()
	ch.Close() // idempotent
	ch.Send(1)

	select {
	case v := <-ch.C():
		t.Errorf("closed channel delivered %d", v)
	default:
	}
}

func TestHubPublish(t *testing.T) {
	h := NewHub[string]()
	a := h.Subscribe(4)
	b := h.Subscribe(4)

	if h.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", h.Count())
	}

	h.Publish("hello")
	if v := <-a.C(); v != "hello" {
		t.Errorf("a got %q", v)
	}
	if v := <-b.C(); v != "hello" {
		t.Errorf("b got %q", v)
	}

	h.Unsubscribe(a)
	if h.Count() != 1 {
		t.Errorf("Count() after Unsubscribe = %d, expected 1", h.Count())
	}
	select {
	case <-a.Done():
	default:
		t.Error("unsubscribed channel should be done")
	}

	h.CloseAll()
	if h.Count() != 0 {
		t.Errorf("Count() after CloseAll = %d, expected 0", h.Count())
	}
}

func TestHubPublishFuncCallsPerSubscriber(t *testing.T) {
	h := NewHub[[]int]()
	a := h.Subscribe(1)
	b := h.Subscribe(1)

	calls := 0
	h.PublishFunc(func() []int {
		calls++
		return []int{1}
	})
	if calls != 2 {
		t.Fatalf("next called %d times, expected 2", calls)
	}

	va, vb := <-a.C(), <-b.C()
	va[0] = 9
	if vb[0] != 1 {
		t.Error("subscribers share the published value")
	}
}
