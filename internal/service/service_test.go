package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/fixtures"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingEnqueuer struct {
	to, username string
	calls        int
	err          error
}

func (r *recordingEnqueuer) EnqueueWelcome(_ context.Context, to, username string) error {
	r.calls++
	r.to, r.username = to, username
	return r.err
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
}

func newUserService(welcome WelcomeEnqueuer) (*UserService, *repository.MemoryStore[model.UserInDB]) {
	store := repository.NewMemoryStore[model.UserInDB]()
	svc := NewUserService(nil, store, welcome)
	svc.cost = bcrypt.MinCost
	return svc, store
}

func TestUserRegisterHashesPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	welcome := &recordingEnqueuer{}
	svc, store := newUserService(welcome)

	in := model.UserIn{
		UserBase: model.UserBase{Username: "murugan", Email: "murugan@example.com"},
		Password: "vel",
	}

	out, err := svc.Register(ctx, in, true)
	require.NoError(t, err)
	assert.Equal(t, in.UserBase, out.UserBase)

	stored, err := store.Get(ctx, "murugan")
	require.NoError(t, err)
	assert.NotEqual(t, "vel", stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("vel")))

	assert.Equal(t, 1, welcome.calls)
	assert.Equal(t, "murugan@example.com", welcome.to)
	assert.Equal(t, "murugan", welcome.username)
}

func TestUserRegisterIgnoresEnqueueFailure(t *testing.T) {
	t.Parallel()

	welcome := &recordingEnqueuer{err: errors.New("queue down")}
	svc, _ := newUserService(welcome)

	_, err := svc.Register(context.Background(), model.UserIn{
		UserBase: model.UserBase{Username: "a", Email: "a@example.com"},
		Password: "p",
	}, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, welcome.calls)
}

func TestUserRegisterWithoutNotify(t *testing.T) {
	t.Parallel()

	welcome := &recordingEnqueuer{}
	svc, _ := newUserService(welcome)

	_, err := svc.Register(context.Background(), model.UserIn{
		UserBase: model.UserBase{Username: "a", Email: "a@example.com"},
		Password: "p",
	}, false)
	require.NoError(t, err)
	assert.Zero(t, welcome.calls)
}

func TestUserAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newUserService(nil)
	_, err := svc.Register(ctx, model.UserIn{
		UserBase: model.UserBase{Username: "a", Email: "a@example.com"},
		Password: "right",
	}, true)
	require.NoError(t, err)

	ok, err := svc.Authenticate(ctx, "a", "right")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Authenticate(ctx, "a", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Authenticate(ctx, "nobody", "right")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBenefitFileAndTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewBenefitService(nil, repository.NewMemoryStore[float64]())
	price, tax := 100.0, 6.5

	total, err := svc.File(ctx, 7, model.Returns{Name: "Foo", Price: &price, Tax: &tax})
	require.NoError(t, err)
	assert.InDelta(t, 106.5, total, 1e-9)

	got, err := svc.Total(ctx, 7)
	require.NoError(t, err)
	assert.InDelta(t, 106.5, got, 1e-9)

	_, err = svc.Total(ctx, 8)
	requireStatus(t, err, http.StatusNotFound)

	zero := 0.0
	total, err = svc.File(ctx, 9, model.Returns{Name: "Free", Price: &zero})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestThingPatchAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := repository.NewMemoryStore[model.Thing]()
	require.NoError(t, store.Put(ctx, "murugan", model.Thing{Name: "Murugan", Price: 50, Tags: []string{"vel"}}))

	svc := NewThingService(nil, store)

	price := 66.6
	updated, err := svc.Patch(ctx, "murugan", model.ThingPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Murugan", updated.Name)
	assert.Equal(t, 66.6, updated.Price)
	assert.Equal(t, []string{"vel"}, updated.Tags)

	_, err = svc.Patch(ctx, "missing", model.ThingPatch{Price: &price})
	requireStatus(t, err, http.StatusNotFound)

	require.NoError(t, svc.Delete(ctx, "murugan"))
	_, err = svc.Get(ctx, "murugan")
	requireStatus(t, err, http.StatusNotFound)

	requireStatus(t, svc.Delete(ctx, "murugan"), http.StatusNotFound)
}

func TestThingReplaceDefaultsTags(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewThingService(nil, repository.NewMemoryStore[model.Thing]())

	all, err := svc.Replace(ctx, "x", model.Thing{Name: "X"})
	require.NoError(t, err)
	require.Contains(t, all, "x")
	assert.Equal(t, []string{}, all["x"].Tags)
}

func TestCatalogPage(t *testing.T) {
	t.Parallel()

	seed, err := fixtures.Load()
	require.NoError(t, err)
	svc := NewCatalogService(seed)

	tests := []struct {
		name        string
		skip, limit int
		want        []string
	}{
		{name: "all", skip: 0, limit: 10, want: []string{"Foo", "Bar", "Baz"}},
		{name: "window", skip: 1, limit: 1, want: []string{"Bar"}},
		{name: "skip past end", skip: 5, limit: 10, want: []string{}},
		{name: "negative", skip: -1, limit: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0, len(tt.want))
			for _, e := range svc.Page(tt.skip, tt.limit) {
				got = append(got, e.ItemName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	t.Parallel()

	seed, err := fixtures.Load()
	require.NoError(t, err)
	svc := NewCatalogService(seed)

	v, err := svc.ErrorItem("Foo")
	require.NoError(t, err)
	assert.Equal(t, "It is an item in Foo", v)

	_, err = svc.ErrorItem("nope")
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.Vehicle("nope")
	requireStatus(t, err, http.StatusNotFound)

	title, ok := svc.Media("imdb-tt0371724")
	assert.True(t, ok)
	assert.NotEmpty(t, title)

	id, title := svc.RandomMedia()
	assert.NotEmpty(t, id)
	assert.Equal(t, seed.MediaIDs[id], title)
}

func TestJSONCompatible(t *testing.T) {
	t.Parallel()

	type inner struct {
		Tags []string `json:"tags"`
	}
	doc, err := JSONCompatible(struct {
		Name  string `json:"name"`
		Inner inner  `json:"inner"`
	}{Name: "a", Inner: inner{Tags: []string{"x"}}})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":  "a",
		"inner": map[string]any{"tags": []any{"x"}},
	}, doc)

	_, err = JSONCompatible([]int{1})
	assert.Error(t, err)
}
