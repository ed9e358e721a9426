package bq_test

import (
	"errors"
	"testing"

	bq "github.com/kaynarov/squerrel-queue"
)

func TestPopBulkOnEmptyQueue(t *testing.T) {
	q := bq.New(8, 64).Build()
	b := q.PopBulk()
	if !b.Empty() {
		t.Fatal("PopBulk on empty queue: got non-empty batch")
	}
	dst := make([]byte, q.MaxSize())
	if _, err := q.ConsumeFromBulk(&b, dst); !errors.Is(err, bq.ErrWouldBlock) {
		t.Fatalf("ConsumeFromBulk on empty batch: got %v, want ErrWouldBlock", err)
	}
}

func TestPopBulkPartialThenRefill(t *testing.T) {
	q := bq.New(8, 64).Build()
	for i := 0; i < 3; i++ {
		if err := q.TryPush([]byte{byte(i)}); err != nil {
			t.Fatalf("TryPush(%d): %v", i, err)
		}
	}

	b := q.PopBulk()
	dst := make([]byte, q.MaxSize())
	n, err := q.ConsumeFromBulk(&b, dst)
	if err != nil {
		t.Fatalf("ConsumeFromBulk: %v", err)
	}
	if n != 1 || dst[0] != 0 {
		t.Fatalf("ConsumeFromBulk: got %v, want [0]", dst[:n])
	}
	if b.Empty() {
		t.Fatal("batch reports empty after draining 1 of 3 claimed elements")
	}

	// A fresh push is invisible to the already-claimed batch.
	if err := q.TryPush([]byte{99}); err != nil {
		t.Fatalf("TryPush: %v", err)
	}

	remaining := 0
	for !b.Empty() {
		if _, err := q.ConsumeFromBulk(&b, dst); err != nil {
			t.Fatalf("ConsumeFromBulk: %v", err)
		}
		if dst[0] == 99 {
			t.Fatal("batch observed an element pushed after PopBulk claimed it")
		}
		remaining++
	}
	if remaining != 2 {
		t.Fatalf("drained %d remaining elements from batch, want 2", remaining)
	}

	// The element pushed after the batch was claimed is still poppable
	// through a fresh TryPop/PopBulk.
	pn, err := q.TryPop(dst)
	if err != nil {
		t.Fatalf("TryPop after batch exhausted: %v", err)
	}
	if pn != 1 || dst[0] != 99 {
		t.Fatalf("TryPop: got %v, want [99]", dst[:pn])
	}
}

func TestPopBulkEmptyReportsCorrectly(t *testing.T) {
	q := bq.New(4, 64).Build()
	b := q.PopBulk()
	if !b.Empty() {
		t.Fatal("Empty() on a batch claimed from an empty queue should be true")
	}
}

func TestPopBulkThenPushThenPopBulkAgain(t *testing.T) {
	q := bq.New(4, 64).Build()
	dst := make([]byte, q.MaxSize())

	if err := q.TryPush([]byte("one")); err != nil {
		t.Fatalf("TryPush: %v", err)
	}
	b1 := q.PopBulk()
	n, err := q.ConsumeFromBulk(&b1, dst)
	if err != nil || string(dst[:n]) != "one" {
		t.Fatalf("ConsumeFromBulk: got (%q, %v), want (\"one\", nil)", dst[:n], err)
	}
	if !b1.Empty() {
		t.Fatal("batch should be exhausted after draining its single element")
	}

	if err := q.TryPush([]byte("two")); err != nil {
		t.Fatalf("TryPush: %v", err)
	}
	b2 := q.PopBulk()
	n, err = q.ConsumeFromBulk(&b2, dst)
	if err != nil || string(dst[:n]) != "two" {
		t.Fatalf("ConsumeFromBulk: got (%q, %v), want (\"two\", nil)", dst[:n], err)
	}
}
