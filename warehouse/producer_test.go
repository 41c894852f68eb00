package warehouse

import (
	"errors"
	"testing"
)

func makeOrders(n int) []Order {
	orders := make([]Order, 0, n)
	for id := int64(1); id <= int64(n); id++ {
		orders = append(orders, Order{ID: id, Kind: "sneakers", Quantity: int(id)})
	}
	return orders
}

func TestProducer_Run_EnqueuesAllInOrder(t *testing.T) {
	// GIVEN a queue roomy enough that no enqueue blocks
	q := NewMonitorQueue(10)
	p := &Producer{Queue: q, Orders: makeOrders(10)}

	// WHEN the producer runs
	if err := p.Run(); err != nil {
		t.Fatalf("producer run: %v", err)
	}

	// THEN every order was accepted, in order
	if p.Produced() != 10 {
		t.Errorf("Produced() = %d, want 10", p.Produced())
	}
	for want := int64(1); want <= 10; want++ {
		o, err := q.Dequeue()
		if err != nil {
			t.Fatalf("dequeue: %v", err)
		}
		if o.ID != want {
			t.Errorf("got ID %d, want %d", o.ID, want)
		}
	}
}

func TestProducer_Run_StopsOnShutdown(t *testing.T) {
	// GIVEN a tiny queue and a large batch
	q := NewMonitorQueue(1)
	p := &Producer{Queue: q, Orders: makeOrders(100)}

	done := make(chan error, 1)
	go func() {
		done <- p.Run()
	}()

	// WHEN one order is consumed and the queue shuts down
	if _, err := q.Dequeue(); err != nil {
		t.Fatalf("dequeue: %v", err)
	}
	q.Shutdown()

	// THEN the producer stops early with ErrShutdown
	if err := <-done; !errors.Is(err, ErrShutdown) {
		t.Fatalf("producer returned %v, want ErrShutdown", err)
	}
	if p.Produced() >= 100 {
		t.Errorf("Produced() = %d, want an early stop", p.Produced())
	}
}

func TestProducer_Run_EmptyBatch_NoOp(t *testing.T) {
	q := NewMonitorQueue(1)
	p := &Producer{Queue: q}
	if err := p.Run(); err != nil {
		t.Fatalf("empty producer run: %v", err)
	}
	if p.Produced() != 0 {
		t.Errorf("Produced() = %d, want 0", p.Produced())
	}
}
