package grip

// Picking resolves an ordered front-to-back hit list into at most one drag
// target. The priority cascade is expressed as two ordered rule tables so
// each predicate/action pair is testable on its own: the first table runs
// against the current object when the pointer lands on it (keeping it
// "sticky" even when another object is nearer the cursor), the second scans
// the remaining hits for a new object to switch to.

// pickRule is one predicate/action pair of the resolver chain. Rules are
// evaluated in order; the first matching rule produces the result.
type pickRule struct {
	when func(v *View, obj *Object, h Hit, mods Modifiers) bool
	do   func(v *View, obj *Object, h Hit, mods Modifiers) PickResult
}

func isHandle(h Hit, kind HandleKind) bool {
	return h.Node.Part == PartHandle && h.Node.Handle == kind
}

// currentObjectRules run on the frontmost hit owned by the current object.
var currentObjectRules = []pickRule{
	{
		// Menu handle: open the context menu, no drag.
		when: func(_ *View, _ *Object, h Hit, _ Modifiers) bool {
			return isHandle(h, HandleMenu)
		},
		do: func(v *View, _ *Object, _ Hit, _ Modifiers) PickResult {
			v.menuRequested = true
			return PickResult{Action: PickActionOpenMenu}
		},
	},
	{
		// Closed padlock: unlock, no drag.
		when: func(_ *View, _ *Object, h Hit, _ Modifiers) bool {
			return h.Node.Part == PartLockIcon
		},
		do: func(_ *View, obj *Object, _ Hit, _ Modifiers) PickResult {
			obj.SetLocked(false)
			return PickResult{Action: PickActionUnlocked}
		},
	},
	{
		// Open padlock: lock and cancel the pick.
		when: func(_ *View, _ *Object, h Hit, _ Modifiers) bool {
			return h.Node.Part == PartUnlockIcon
		},
		do: func(_ *View, obj *Object, _ Hit, _ Modifiers) PickResult {
			obj.SetLocked(true)
			return PickResult{Action: PickActionLocked}
		},
	},
	{
		// Locked object without the override modifier: cancel the pick.
		when: func(_ *View, obj *Object, _ Hit, mods Modifiers) bool {
			return obj.Locked() && !mods.Override
		},
		do: func(_ *View, _ *Object, _ Hit, _ Modifiers) PickResult {
			return PickResult{}
		},
	},
	{
		// Anything else on the current object starts a drag on that node.
		when: func(_ *View, _ *Object, _ Hit, _ Modifiers) bool { return true },
		do: func(_ *View, obj *Object, h Hit, _ Modifiers) PickResult {
			return PickResult{Object: obj, Node: h.Node, Local: h.Local}
		},
	},
}

// anyObjectRules run front to back over hits of non-current objects in the
// view's workspace. A non-matching hit falls through to the next hit.
var anyObjectRules = []pickRule{
	{
		// Closed padlock of another object: unlock it and grab its body.
		when: func(_ *View, _ *Object, h Hit, _ Modifiers) bool {
			return h.Node.Part == PartLockIcon
		},
		do: func(_ *View, obj *Object, h Hit, _ Modifiers) PickResult {
			obj.SetLocked(false)
			return PickResult{Object: obj, Node: obj.LockerNode(), Local: h.Local, Action: PickActionUnlocked}
		},
	},
	{
		// Unlocked object, or locked with override held: grab its body.
		when: func(_ *View, obj *Object, _ Hit, mods Modifiers) bool {
			return !obj.Locked() || mods.Override
		},
		do: func(_ *View, obj *Object, h Hit, _ Modifiers) PickResult {
			return PickResult{Object: obj, Node: obj.LockerNode(), Local: h.Local}
		},
	},
}

// Pick resolves a hit list against the view's current object, workspace,
// and lock states. Lock toggles happen as a side effect and are reported in
// PickResult.Action; a menu request is additionally latched on the view
// (see TakeMenuRequest).
func (v *View) Pick(hits []Hit, mods Modifiers) PickResult {
	if len(hits) == 0 {
		return PickResult{}
	}

	current := v.Current
	if current != nil && current.Workspace != v.Workspace {
		current = nil
	}

	// The current object stays sticky: if any of its nodes is under the
	// pointer, resolve against it even when another object is frontmost.
	if current != nil {
		for _, h := range hits {
			if !current.Owns(h.Node) {
				continue
			}
			for _, r := range currentObjectRules {
				if r.when(v, current, h, mods) {
					return r.do(v, current, h, mods)
				}
			}
		}
		// Not under the pointer: fall through as if no current object.
	}

	for _, h := range hits {
		obj := v.FindObject(h.Node.Object)
		if obj == nil || obj.Workspace != v.Workspace {
			continue
		}
		for _, r := range anyObjectRules {
			if r.when(v, obj, h, mods) {
				return r.do(v, obj, h, mods)
			}
		}
	}
	return PickResult{}
}
