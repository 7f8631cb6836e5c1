package keymap

import (
	"slices"
	"strings"
)

// Conflict is a key bound to more than one action. The first binding in
// table order wins; the others are unreachable.
type Conflict struct {
	Key      string
	Actions  []Action
	Contexts []string
}

func (c Conflict) String() string {
	names := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		names[i] = string(a)
	}
	return c.Key + ": " + strings.Join(names, ", ")
}

// Resolver maps keys to actions and actions back to their keys.
type Resolver struct {
	actions   map[string]Action
	keys      map[Action][]string
	conflicts []Conflict
}

// NewResolver indexes bindings. Keys keep their table order per action so
// the help overlay lists them as written.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	clash := make(map[string]*Conflict)

	for _, b := range bindings {
		for _, key := range b.Keys {
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}

			first, bound := r.actions[key]
			switch {
			case !bound:
				r.actions[key] = b.Action
			case first != b.Action:
				c, ok := clash[key]
				if !ok {
					c = &Conflict{Key: key, Actions: []Action{first}, Contexts: []string{contextOf(bindings, first)}}
					clash[key] = c
				}
				c.Actions = append(c.Actions, b.Action)
				c.Contexts = append(c.Contexts, b.Context)
			}
		}
	}

	for _, c := range clash {
		r.conflicts = append(r.conflicts, *c)
	}
	slices.SortFunc(r.conflicts, func(a, b Conflict) int { return strings.Compare(a.Key, b.Key) })
	return r
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in table order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Conflicts returns keys bound to several actions, sorted by key.
func (r *Resolver) Conflicts() []Conflict {
	return r.conflicts
}

func contextOf(bindings []Binding, a Action) string {
	for _, b := range bindings {
		if b.Action == a {
			return b.Context
		}
	}
	return ""
}
