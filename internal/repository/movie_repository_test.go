package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/gnwankwo/casting-agency/internal/model"
)

func TestMovieRepoCRUD(t *testing.T) {
	db := testDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	m := seedMovie(t, db, "Treadstone")
	if m.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Treadstone" || got.ReleaseDate == nil || *got.ReleaseDate != "2020-01-04" {
		t.Errorf("got %+v", got)
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("GetByID(9999) err = %v, want ErrMovieNotFound", err)
	}

	seedMovie(t, db, "Rise of Skywalker")
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Treadstone" || list[1].Title != "Rise of Skywalker" {
		t.Errorf("list out of order: %+v", list)
	}

	title := "Treadstone S1"
	if err := repo.Update(ctx, m.ID, &title, nil, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repo.GetByID(ctx, m.ID)
	if got.Title != "Treadstone S1" || got.Description != m.Description {
		t.Errorf("partial update touched wrong fields: %+v", got)
	}

	if err := repo.Update(ctx, 9999, &title, nil, nil); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("Update(9999) err = %v, want ErrMovieNotFound", err)
	}

	if err := repo.Delete(ctx, 9999); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("Delete(9999) err = %v, want ErrMovieNotFound", err)
	}
	if err := repo.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, m.ID); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("movie still present after delete")
	}
}

func TestMovieRepoNilReleaseDate(t *testing.T) {
	db := testDB(t)
	repo := NewMovieRepo(db)
	ctx := context.Background()

	m := &model.Movie{Title: "Untitled", Description: "tbd"}
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ReleaseDate != nil {
		t.Errorf("ReleaseDate = %v, want nil", *got.ReleaseDate)
	}
}

func TestMovieDeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	movie := seedMovie(t, db, "Treadstone")
	other := seedMovie(t, db, "Rise of Skywalker")
	actor := seedActor(t, db, "Jeremy Irvine")

	cast := seedCast(t, db, movie.ID)
	otherCast := seedCast(t, db, other.ID)
	seedStar(t, db, cast.ID, actor.ID)
	keep := seedStar(t, db, otherCast.ID, actor.ID)

	if err := NewMovieRepo(db).Delete(ctx, movie.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := NewCastRepo(db).GetByID(ctx, cast.ID); !errors.Is(err, ErrCastNotFound) {
		t.Errorf("cast survived movie delete: %v", err)
	}
	stars, err := NewStarringRepo(db).List(ctx)
	if err != nil {
		t.Fatalf("List stars: %v", err)
	}
	if len(stars) != 1 || stars[0].ID != keep.ID {
		t.Errorf("stars = %+v, want only the other movie's assignment", stars)
	}
	// The actor is not part of the cascade.
	if _, err := NewActorRepo(db).GetByID(ctx, actor.ID); err != nil {
		t.Errorf("actor deleted by movie cascade: %v", err)
	}
}
