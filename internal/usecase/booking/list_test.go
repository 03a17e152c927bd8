package booking

import (
	"context"
	"testing"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/models"
)

func seedQueue(repo *fakeRepo) {
	for _, b := range []models.Booking{
		{UserEmail: "a@x.com", ServiceID: "S1", DecoratorEmail: "jo@x.com", WorkingStatus: "in_delivery"},
		{UserEmail: "b@x.com", ServiceID: "S2", DecoratorEmail: "jo@x.com", WorkingStatus: "finished_work"},
		{UserEmail: "c@x.com", ServiceID: "S3", DecoratorEmail: "jo@x.com", WorkingStatus: "decorator_assigned"},
		{UserEmail: "d@x.com", ServiceID: "S4", DecoratorEmail: "other@x.com", WorkingStatus: "in_delivery"},
	} {
		copied := b
		_ = repo.CreateBooking(context.Background(), &copied)
	}
}

func TestQueueHidesFinishedByDefault(t *testing.T) {
	repo := newFakeRepo()
	seedQueue(repo)
	uc := NewListBookings(repo)

	out, err := uc.ExecuteQueue(context.Background(), "jo@x.com", "")
	if err != nil {
		t.Fatalf("queue: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("want 2 active jobs, got %d", len(out))
	}
	for _, b := range out {
		if b.WorkingStatus == string(domain.StatusFinishedWork) {
			t.Fatal("finished_work leaked into the default queue view")
		}
	}
}

func TestQueueExplicitFinished(t *testing.T) {
	repo := newFakeRepo()
	seedQueue(repo)
	uc := NewListBookings(repo)

	out, err := uc.ExecuteQueue(context.Background(), "jo@x.com", "finished_work")
	if err != nil {
		t.Fatalf("queue: %v", err)
	}

	if len(out) != 1 || out[0].WorkingStatus != "finished_work" {
		t.Fatalf("want only the finished job, got %+v", out)
	}
}

func TestQueueExplicitOtherStatus(t *testing.T) {
	repo := newFakeRepo()
	seedQueue(repo)
	uc := NewListBookings(repo)

	out, err := uc.ExecuteQueue(context.Background(), "jo@x.com", "in_delivery")
	if err != nil {
		t.Fatalf("queue: %v", err)
	}

	if len(out) != 1 || out[0].WorkingStatus != "in_delivery" {
		t.Fatalf("want the single in_delivery job, got %+v", out)
	}
}

func TestListByUserEmail(t *testing.T) {
	repo := newFakeRepo()
	seedQueue(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), "a@x.com", "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].UserEmail != "a@x.com" {
		t.Fatalf("want a@x.com's single booking, got %+v", out)
	}
}
