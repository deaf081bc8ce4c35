package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"userdesk/internal/model"
	"userdesk/internal/store"
)

type memRepo struct {
	mu      sync.Mutex
	users   map[int]model.User
	nextID  int
	inserts int
	err     error
}

func newMemRepo(users ...model.User) *memRepo {
	r := &memRepo{users: map[int]model.User{}, nextID: 1}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *memRepo) CountByName(_ context.Context, name string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.users {
		if u.Name == name {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *memRepo) Count(ctx context.Context) (int, error) {
	return r.CountMatching(ctx, "")
}

func (r *memRepo) CountMatching(_ context.Context, name string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.matching(name)), nil
}

func (r *memRepo) Insert(_ context.Context, u *model.User) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Name == u.Name {
			return nil, store.ErrDuplicateName
		}
	}
	created := model.User{ID: r.nextID, Name: u.Name, Password: u.Password}
	r.users[created.ID] = created
	r.nextID++
	r.inserts++
	return &created, nil
}

func (r *memRepo) UpdatePassword(_ context.Context, id int, password string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.Password = password
	r.users[id] = u
	return nil
}

func (r *memRepo) DeleteWithProfile(_ context.Context, id int) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

func (r *memRepo) Query(_ context.Context, name string, p *model.Pager) ([]model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := r.matching(name)
	start := p.Offset()
	if start >= len(all) {
		return []model.User{}, nil
	}
	end := start + p.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *memRepo) matching(name string) []model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	name = strings.TrimSpace(name)
	out := []model.User{}
	for _, u := range r.users {
		if name == "" || strings.Contains(u.Name, name) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
