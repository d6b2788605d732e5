package overlay

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueueOrder(t *testing.T) {
	q := NewQueue(4)
	labels := []Label{{Text: "Ahri", Position: image.Pt(538, 1055)}}

	if !q.Clear() || !q.Show(labels) {
		t.Fatal("send failed on empty queue")
	}

	want := []Message{{Clear: true}, {Labels: labels}}
	var got []Message
	for i := 0; i < 2; i++ {
		got = append(got, <-q.Messages())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestQueueNeverBlocks(t *testing.T) {
	q := NewQueue(1)
	if !q.Clear() {
		t.Fatal("first send failed")
	}
	if q.Clear() {
		t.Error("send on full queue reported success")
	}
	if q.Show(nil) {
		t.Error("empty label list should not be sent")
	}
}

func TestNilQueue(t *testing.T) {
	var q *Queue
	if q.Clear() || q.Show([]Label{{Text: "x"}}) {
		t.Error("nil queue accepted a message")
	}
}
