package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	authdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/domain"
	authrepo "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/repository"
	postdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/domain"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
)

type fixture struct {
	posts PostRepository
	users authrepo.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}, &postdomain.PostLike{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := authrepo.NewUserRepository(db)
	cfg := &config.Config{
		FeedPageLimit:       10,
		AuthorFeedPageLimit: 10,
		WatchInterval:       10 * time.Millisecond,
	}
	return &fixture{
		posts: NewPostRepository(db, users, cfg),
		users: users,
	}
}

func (f *fixture) mustUser(t *testing.T, username string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Username: username, Password: "secret", Parrot: "blue"}
	if err := f.users.Create(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func TestCreateAndGetPost(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	created, err := f.posts.Create(ana.ID, "hi")
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if created.Author.Username != "ana" || created.Author.Parrot != "blue" {
		t.Fatalf("author not hydrated: %+v", created.Author)
	}
	if created.Liked || created.LikeCount != 0 {
		t.Fatalf("fresh post should have an empty like set: %+v", created)
	}

	got, err := f.posts.Get(created.ID, ana.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Message != "hi" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestGetMissingOrMalformedPost(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	if _, err := f.posts.Get("01JGXYZXYZXYZXYZXYZXYZXYZX", ana.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for absent id, got %v", err)
	}
	if _, err := f.posts.Get("definitely-not-an-id", ana.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for malformed id, got %v", err)
	}
}

func TestEditAdvancesUpdatedAt(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	created, err := f.posts.Create(ana.ID, "first")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := f.posts.Edit(created.ID, "second"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	edited, err := f.posts.Get(created.ID, ana.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if edited.Message != "second" {
		t.Fatalf("expected edited message, got %q", edited.Message)
	}
	if !edited.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %v -> %v", created.UpdatedAt, edited.UpdatedAt)
	}
	if !edited.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at must not change: %v -> %v", created.CreatedAt, edited.CreatedAt)
	}

	if err := f.posts.Edit("definitely-not-an-id", "x"); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	created, err := f.posts.Create(ana.ID, "bye")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := f.posts.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.posts.Get(created.ID, ana.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
	if err := f.posts.Delete(created.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")
	bob := f.mustUser(t, "bob")

	created, err := f.posts.Create(ana.ID, "hi")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// bob likes
	if err := f.posts.ToggleLike(created.ID, bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	fromBob, err := f.posts.Get(created.ID, bob.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !fromBob.Liked || fromBob.LikeCount != 1 {
		t.Fatalf("expected liked=true likes=1 for bob, got %+v", fromBob)
	}

	// ana still sees the count but not her own like
	fromAna, err := f.posts.Get(created.ID, ana.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fromAna.Liked || fromAna.LikeCount != 1 {
		t.Fatalf("expected liked=false likes=1 for ana, got %+v", fromAna)
	}

	// bob unlikes: back to the original membership
	if err := f.posts.ToggleLike(created.ID, bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	fromBob, err = f.posts.Get(created.ID, bob.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fromBob.Liked || fromBob.LikeCount != 0 {
		t.Fatalf("expected liked=false likes=0 after round trip, got %+v", fromBob)
	}

	if err := f.posts.ToggleLike("definitely-not-an-id", bob.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListFeedPagination(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	total := 25
	ids := make(map[string]bool, total)
	for i := 0; i < total; i++ {
		post, err := f.posts.Create(ana.ID, "post")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids[post.ID] = false
	}

	cursor := ""
	pages := 0
	for {
		page, err := f.posts.ListFeed(cursor, ana.ID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(page) == 0 {
			break
		}
		if len(page) > 10 {
			t.Fatalf("page exceeds limit: %d", len(page))
		}
		pages++
		previous := ""
		for _, post := range page {
			if previous != "" && post.ID >= previous {
				t.Fatalf("page not strictly descending: %s then %s", previous, post.ID)
			}
			if cursor != "" && post.ID >= cursor {
				t.Fatalf("post %s not older than cursor %s", post.ID, cursor)
			}
			seen, known := ids[post.ID]
			if !known {
				t.Fatalf("unknown post id %s", post.ID)
			}
			if seen {
				t.Fatalf("post %s returned twice", post.ID)
			}
			ids[post.ID] = true
			previous = post.ID
		}
		cursor = page[len(page)-1].ID
	}

	if pages != 3 {
		t.Fatalf("expected 3 pages for 25 posts, got %d", pages)
	}
	for id, seen := range ids {
		if !seen {
			t.Fatalf("post %s never returned", id)
		}
	}
}

func TestListFeedEmptyCollection(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	page, err := f.posts.ListFeed("", ana.ID)
	if err != nil {
		t.Fatalf("expected empty page on empty collection, got %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected no posts, got %d", len(page))
	}
}

func TestListFeedMalformedCursor(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	if _, err := f.posts.ListFeed("not-a-cursor", ana.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for malformed cursor, got %v", err)
	}
}

func TestListAuthorFeedFilters(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")
	bob := f.mustUser(t, "bob")

	for i := 0; i < 3; i++ {
		if _, err := f.posts.Create(ana.ID, "from ana"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := f.posts.Create(bob.ID, "from bob"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := f.posts.ListAuthorFeed("", ana.ID, bob.ID)
	if err != nil {
		t.Fatalf("author feed failed: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 posts from ana, got %d", len(page))
	}
	for _, post := range page {
		if post.Author.ID != ana.ID {
			t.Fatalf("foreign post in author feed: %+v", post)
		}
	}
}

func TestWatchEmitsBaselineAndChanges(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")
	bob := f.mustUser(t, "bob")

	created, err := f.posts.Create(ana.ID, "hi")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	updates, err := f.posts.Watch(ctx, created.ID, ana.ID)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	baseline := <-updates
	if baseline == nil || baseline.Message != "hi" {
		t.Fatalf("expected baseline emit, got %+v", baseline)
	}

	// A like by another viewer is an observable change.
	if err := f.posts.ToggleLike(created.ID, bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	change, ok := <-updates
	if !ok {
		t.Fatal("stream closed before change emit")
	}
	if change.LikeCount != 1 {
		t.Fatalf("expected like count 1, got %+v", change)
	}

	// Deleting the post is the terminal signal: the channel closes.
	if err := f.posts.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	for {
		if _, ok := <-updates; !ok {
			return
		}
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	created, err := f.posts.Create(ana.ID, "hi")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := f.posts.Watch(ctx, created.ID, ana.ID)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	<-updates // baseline
	cancel()

	select {
	case _, ok := <-updates:
		if ok {
			t.Fatal("expected channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestWatchUnknownPost(t *testing.T) {
	f := newFixture(t)
	ana := f.mustUser(t, "ana")

	if _, err := f.posts.Watch(context.Background(), "definitely-not-an-id", ana.ID); !errors.Is(err, apperror.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
