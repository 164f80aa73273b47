// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package pages

// Action is one entry of a page's settings menu.
type Action int

const (
	ActionNone Action = iota
	ActionSetFirst
	ActionRename
	ActionCopy
	ActionDuplicate
	ActionDelete
)

// Actions lists the menu actions in display order.
func Actions() []Action {
	return []Action{
		ActionSetFirst,
		ActionRename,
		ActionCopy,
		ActionDuplicate,
		ActionDelete,
	}
}

var actionNames = map[Action]string{
	ActionSetFirst:  "set-first",
	ActionRename:    "rename",
	ActionCopy:      "copy",
	ActionDuplicate: "duplicate",
	ActionDelete:    "delete",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// Label is the menu text for the action.
func (a Action) Label() string {
	switch a {
	case ActionSetFirst:
		return "Set as first page"
	case ActionRename:
		return "Rename"
	case ActionCopy:
		return "Copy"
	case ActionDuplicate:
		return "Duplicate"
	case ActionDelete:
		return "Delete"
	default:
		return ""
	}
}

// ParseAction maps an action name such as "set-first" to its Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Role is a page's structural position in the strip.
type Role int

const (
	RoleFirst Role = iota
	RoleMiddle
	RoleLast
)

func (r Role) String() string {
	switch r {
	case RoleFirst:
		return "first"
	case RoleLast:
		return "last"
	default:
		return "middle"
	}
}

// RoleAt derives the role of index within a strip of total pages. A lone
// page is first.
func RoleAt(index, total int) Role {
	switch {
	case index == 0:
		return RoleFirst
	case index == total-1:
		return RoleLast
	default:
		return RoleMiddle
	}
}
