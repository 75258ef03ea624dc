// Package grip is a direct-manipulation transform engine for 2D compositing
// tools.
//
// Grip owns the math and state machine behind dragging an on-screen object
// by its handles: corner and edge resizing with the opposite corner pinned,
// center-anchored scaling, rotation, crop-window editing, and plain moves,
// all under proportional / discretize / override key modifiers.
//
// Grip does not render anything. The host supplies three collaborators:
//
//   - a [Camera] (projection and unprojection between screen and scene),
//   - a hit-test traversal producing an ordered front-to-back []Hit for a
//     screen point,
//   - read/write access to each [Object]'s [Transform] and handle
//     visibility.
//
// A typical frame loop:
//
//	// on pointer press
//	result := view.Pick(hits, grip.ReadModifiers())
//	session := view.Begin(result, screenPoint)
//
//	// on pointer move while held
//	cursor, status := session.Update(screenPoint, grip.ReadModifiers())
//	ebiten.SetCursorShape(cursor.EbitenShape())
//
//	// on pointer release
//	session.End()
//
// Every Update recomputes the live transform from the snapshot taken at
// Begin, so repeated moves to the same point always produce the same
// transform. See examples/manipulate for a complete interactive program.
package grip
