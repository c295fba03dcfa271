package association

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/extents/pkg/types"
)

var past = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func newPost(t *testing.T, id int) *types.Post {
	t.Helper()
	p, err := types.NewPost(id, fmt.Sprintf("post %d", id), past)
	require.NoError(t, err)
	return p
}

func newMedia(t *testing.T, id int) *types.Media {
	t.Helper()
	m, err := types.NewMedia(id, "image")
	require.NoError(t, err)
	return m
}

func newAccount(t *testing.T, id int) *types.Account {
	t.Helper()
	a, err := types.NewAccount(id, fmt.Sprintf("user%d", id), "u@example.com", past, "1 Main St", "secret")
	require.NoError(t, err)
	return a
}

func newTag(t *testing.T, id int) *types.Tag {
	t.Helper()
	tg, err := types.NewTag(id, []string{"music"})
	require.NoError(t, err)
	return tg
}

func newUser(t *testing.T, accountID int) *types.User {
	t.Helper()
	u, err := types.NewUser(accountID, false)
	require.NoError(t, err)
	return u
}

func postMedia() *Link[*types.Post, *types.Media] {
	return New[*types.Post, *types.Media](Spec{
		Name: types.LinkPostMedia, Kind: OneToMany, MaxPerA: types.MaxMediaPerPost,
	})
}

func accountPosts() *Link[*types.Account, *types.Post] {
	return New[*types.Account, *types.Post](Spec{Name: types.LinkAccountPosts, Kind: OneToMany})
}

func TestConnectIsSymmetric(t *testing.T) {
	l := accountPosts()
	acc, p := newAccount(t, 1), newPost(t, 10)

	added, err := l.Connect(acc, p)
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, []*types.Post{p}, l.Targets(acc))
	owner, ok := l.Source(p)
	require.True(t, ok)
	assert.Same(t, acc, owner)
	assert.True(t, l.Linked(acc, p))
	assert.NoError(t, l.Check())
}

func TestConnectTwiceIsNoOp(t *testing.T) {
	l := accountPosts()
	acc, p := newAccount(t, 1), newPost(t, 10)

	_, err := l.Connect(acc, p)
	require.NoError(t, err)
	added, err := l.Connect(acc, p)
	require.NoError(t, err)

	assert.False(t, added)
	assert.Equal(t, 1, l.Len())
}

func TestConnectRejectsNil(t *testing.T) {
	l := accountPosts()

	_, err := l.Connect(nil, newPost(t, 1))
	assert.ErrorIs(t, err, types.ErrNilEntity)
	_, err = l.Connect(newAccount(t, 1), nil)
	assert.ErrorIs(t, err, types.ErrNilEntity)
	assert.Equal(t, 0, l.Len())
}

func TestConnectRejectsDuplicateID(t *testing.T) {
	l := accountPosts()
	acc := newAccount(t, 1)

	_, err := l.Connect(acc, newPost(t, 7))
	require.NoError(t, err)
	other := newPost(t, 7)
	_, err = l.Connect(acc, other)

	assert.ErrorIs(t, err, types.ErrDuplicateMember)
	assert.Len(t, l.Targets(acc), 1)
	_, ok := l.Source(other)
	assert.False(t, ok)
}

func TestDisconnectIsSymmetricAndIdempotent(t *testing.T) {
	l := accountPosts()
	acc, p := newAccount(t, 1), newPost(t, 10)
	_, err := l.Connect(acc, p)
	require.NoError(t, err)

	assert.True(t, l.Disconnect(acc, p))
	assert.False(t, l.Disconnect(acc, p))
	assert.False(t, l.Disconnect(nil, p))

	assert.Empty(t, l.Targets(acc))
	_, ok := l.Source(p)
	assert.False(t, ok)
	assert.Empty(t, l.Pairs())
	assert.NoError(t, l.Check())
}

func TestMediaBoundPerPost(t *testing.T) {
	l := postMedia()
	p := newPost(t, 1)
	for i := 1; i <= types.MaxMediaPerPost; i++ {
		_, err := l.Connect(p, newMedia(t, i))
		require.NoError(t, err)
	}

	extra := newMedia(t, 99)
	_, err := l.Connect(p, extra)

	assert.ErrorIs(t, err, types.ErrCardinality)
	assert.Len(t, l.Targets(p), types.MaxMediaPerPost)
	_, ok := l.Source(extra)
	assert.False(t, ok)
	assert.NoError(t, l.Check())
}

func TestOneToManyMovesChildBetweenOwners(t *testing.T) {
	l := accountPosts()
	a1, a2, p := newAccount(t, 1), newAccount(t, 2), newPost(t, 10)

	_, err := l.Connect(a1, p)
	require.NoError(t, err)
	_, err = l.Connect(a2, p)
	require.NoError(t, err)

	assert.Empty(t, l.Targets(a1))
	assert.Equal(t, []*types.Post{p}, l.Targets(a2))
	assert.Equal(t, []*types.Account{a2}, l.Sources(p))
	assert.NoError(t, l.Check())
}

func TestOneToOneDisplacesBothSides(t *testing.T) {
	l := New[*types.Account, *types.User](Spec{Name: types.LinkAccountUser, Kind: OneToOne})
	a1, a2 := newAccount(t, 1), newAccount(t, 2)
	u1, u2 := newUser(t, 1), newUser(t, 2)

	_, err := l.Connect(a1, u1)
	require.NoError(t, err)
	_, err = l.Connect(a2, u2)
	require.NoError(t, err)
	_, err = l.Connect(a1, u2)
	require.NoError(t, err)

	got, ok := l.Target(a1)
	require.True(t, ok)
	assert.Same(t, u2, got)
	_, ok = l.Target(a2)
	assert.False(t, ok)
	_, ok = l.Source(u1)
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
	assert.NoError(t, l.Check())
}

func TestCanConnectLeavesLinkUnchanged(t *testing.T) {
	l := postMedia()
	p := newPost(t, 1)
	for i := 1; i <= types.MaxMediaPerPost; i++ {
		_, err := l.Connect(p, newMedia(t, i))
		require.NoError(t, err)
	}
	other := newPost(t, 2)
	m := newMedia(t, 99)
	_, err := l.Connect(other, m)
	require.NoError(t, err)

	assert.ErrorIs(t, l.CanConnect(p, m), types.ErrCardinality)
	assert.ErrorIs(t, l.CanConnect(nil, m), types.ErrNilEntity)
	assert.ErrorIs(t, l.CanConnect(other, newMedia(t, 99)), types.ErrDuplicateMember)
	assert.NoError(t, l.CanConnect(other, m))
	assert.NoError(t, l.CanConnect(newPost(t, 3), m))

	owner, ok := l.Source(m)
	require.True(t, ok)
	assert.Same(t, other, owner)
	assert.Len(t, l.Targets(p), types.MaxMediaPerPost)
	assert.Equal(t, types.MaxMediaPerPost+1, l.Len())
}

func TestDisplaces(t *testing.T) {
	posts := accountPosts()
	a1, a2 := newAccount(t, 1), newAccount(t, 2)
	p1, p2 := newPost(t, 1), newPost(t, 2)
	_, err := posts.Connect(a1, p1)
	require.NoError(t, err)

	assert.False(t, posts.Displaces(a1, p1), "already linked")
	assert.False(t, posts.Displaces(a1, p2), "many side takes another")
	assert.True(t, posts.Displaces(a2, p1), "post already has an author")

	users := New[*types.Account, *types.User](Spec{Name: types.LinkAccountUser, Kind: OneToOne})
	u1, u2 := newUser(t, 1), newUser(t, 2)
	_, err = users.Connect(a1, u1)
	require.NoError(t, err)
	assert.True(t, users.Displaces(a1, u2))
	assert.True(t, users.Displaces(a2, u1))
	assert.False(t, users.Displaces(a2, u2))

	tags := New[*types.Tag, *types.Post](Spec{Name: types.LinkTagPosts, Kind: ManyToMany})
	tg := newTag(t, 1)
	_, err = tags.Connect(tg, p1)
	require.NoError(t, err)
	assert.False(t, tags.Displaces(newTag(t, 2), p1))
}

func TestManyToManyBothSidesHoldCollections(t *testing.T) {
	l := New[*types.Tag, *types.Post](Spec{Name: types.LinkTagPosts, Kind: ManyToMany})
	t1, t2 := newTag(t, 1), newTag(t, 2)
	p1, p2 := newPost(t, 1), newPost(t, 2)

	for _, pair := range []struct {
		tag  *types.Tag
		post *types.Post
	}{{t1, p1}, {t1, p2}, {t2, p1}} {
		_, err := l.Connect(pair.tag, pair.post)
		require.NoError(t, err)
	}

	assert.Equal(t, []*types.Post{p1, p2}, l.Targets(t1))
	assert.Equal(t, []*types.Tag{t1, t2}, l.Sources(p1))
	assert.Equal(t, 3, l.Len())
	assert.NoError(t, l.Check())
}

func TestManyToManyBoundOnBSide(t *testing.T) {
	l := New[*types.Tag, *types.Post](Spec{Name: "bounded", Kind: ManyToMany, MaxPerB: 1})
	p := newPost(t, 1)

	_, err := l.Connect(newTag(t, 1), p)
	require.NoError(t, err)
	_, err = l.Connect(newTag(t, 2), p)

	assert.ErrorIs(t, err, types.ErrCardinality)
	assert.Len(t, l.Sources(p), 1)
}

func TestReassign(t *testing.T) {
	l := postMedia()
	p := newPost(t, 1)
	m1, m2 := newMedia(t, 1), newMedia(t, 2)
	_, err := l.Connect(p, m1)
	require.NoError(t, err)

	require.NoError(t, l.Reassign(p, m1, m2))

	assert.Equal(t, []*types.Media{m2}, l.Targets(p))
	_, ok := l.Source(m1)
	assert.False(t, ok)
	owner, ok := l.Source(m2)
	require.True(t, ok)
	assert.Same(t, p, owner)
	assert.NoError(t, l.Check())
}

func TestReassignEdgeCases(t *testing.T) {
	t.Run("same old and new is a no-op", func(t *testing.T) {
		l := postMedia()
		p, m := newPost(t, 1), newMedia(t, 1)
		_, err := l.Connect(p, m)
		require.NoError(t, err)

		require.NoError(t, l.Reassign(p, m, m))
		assert.Equal(t, []*types.Media{m}, l.Targets(p))
	})

	t.Run("nil new removes old", func(t *testing.T) {
		l := postMedia()
		p, m := newPost(t, 1), newMedia(t, 1)
		_, err := l.Connect(p, m)
		require.NoError(t, err)

		require.NoError(t, l.Reassign(p, m, nil))
		assert.Empty(t, l.Targets(p))
	})

	t.Run("nil owner is rejected", func(t *testing.T) {
		l := postMedia()
		err := l.Reassign(nil, newMedia(t, 1), newMedia(t, 2))
		assert.ErrorIs(t, err, types.ErrNilEntity)
	})

	t.Run("at bound swaps without exceeding it", func(t *testing.T) {
		l := postMedia()
		p := newPost(t, 1)
		var first *types.Media
		for i := 1; i <= types.MaxMediaPerPost; i++ {
			m := newMedia(t, i)
			if first == nil {
				first = m
			}
			_, err := l.Connect(p, m)
			require.NoError(t, err)
		}

		require.NoError(t, l.Reassign(p, first, newMedia(t, 50)))
		assert.Len(t, l.Targets(p), types.MaxMediaPerPost)
	})

	t.Run("refused reassign keeps old", func(t *testing.T) {
		l := postMedia()
		p := newPost(t, 1)
		m1, m2 := newMedia(t, 1), newMedia(t, 2)
		for _, m := range []*types.Media{m1, m2} {
			_, err := l.Connect(p, m)
			require.NoError(t, err)
		}

		err := l.Reassign(p, m1, newMedia(t, 2))
		assert.ErrorIs(t, err, types.ErrDuplicateMember)
		assert.Equal(t, []*types.Media{m1, m2}, l.Targets(p))
	})
}

func TestDetach(t *testing.T) {
	l := New[*types.Tag, *types.Post](Spec{Name: types.LinkTagPosts, Kind: ManyToMany})
	t1, t2 := newTag(t, 1), newTag(t, 2)
	p := newPost(t, 1)
	for _, tg := range []*types.Tag{t1, t2} {
		_, err := l.Connect(tg, p)
		require.NoError(t, err)
	}

	assert.Equal(t, []*types.Tag{t1, t2}, l.DetachB(p))
	assert.Empty(t, l.Targets(t1))
	assert.Empty(t, l.Targets(t2))

	_, err := l.Connect(t1, p)
	require.NoError(t, err)
	assert.Equal(t, []*types.Post{p}, l.DetachA(t1))
	assert.Equal(t, 0, l.Len())
	assert.NoError(t, l.Check())
}

func TestPairsFollowConnectOrder(t *testing.T) {
	l := accountPosts()
	a1, a2 := newAccount(t, 1), newAccount(t, 2)
	p1, p2, p3 := newPost(t, 1), newPost(t, 2), newPost(t, 3)

	for _, c := range []struct {
		a *types.Account
		p *types.Post
	}{{a2, p1}, {a1, p2}, {a2, p3}} {
		_, err := l.Connect(c.a, c.p)
		require.NoError(t, err)
	}

	want := []Pair[*types.Account, *types.Post]{
		{From: a2, To: p1}, {From: a2, To: p3}, {From: a1, To: p2},
	}
	assert.Equal(t, want, l.Pairs())

	l.Clear()
	assert.Empty(t, l.Pairs())
	assert.Equal(t, 0, l.Len())
}

func TestCheckDetectsAsymmetry(t *testing.T) {
	l := accountPosts()
	acc, p := newAccount(t, 1), newPost(t, 10)
	l.addForward(acc, p)

	assert.ErrorIs(t, l.Check(), types.ErrAsymmetric)
}

func TestNewPanicsOnBadSpec(t *testing.T) {
	assert.Panics(t, func() { New[*types.Post, *types.Media](Spec{Name: "x"}) })
	assert.Panics(t, func() {
		New[*types.Post, *types.Media](Spec{Name: "x", Kind: OneToMany, MaxPerA: -1})
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "one-to-one", OneToOne.String())
	assert.Equal(t, "many-to-many", ManyToMany.String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}
