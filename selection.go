package grip

// Selection is the global set of selected objects. Geometric editing is
// suppressed while more than one object is selected; the session then runs
// in a display-only mode.
type Selection struct {
	objects []*Object
}

// Add appends an object to the selection if not already present.
func (s *Selection) Add(o *Object) {
	if o == nil || s.Contains(o) {
		return
	}
	s.objects = append(s.objects, o)
	o.Mode = ModeSelected
}

// Remove takes an object out of the selection.
func (s *Selection) Remove(o *Object) {
	for i, obj := range s.objects {
		if obj == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			o.Mode = ModeNormal
			return
		}
	}
}

// Set replaces the selection with a single object.
func (s *Selection) Set(o *Object) {
	s.Clear()
	s.Add(o)
}

// Toggle adds the object if absent, removes it if present.
func (s *Selection) Toggle(o *Object) {
	if s.Contains(o) {
		s.Remove(o)
	} else {
		s.Add(o)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	for _, o := range s.objects {
		o.Mode = ModeNormal
	}
	s.objects = s.objects[:0]
}

// Contains reports whether the object is selected.
func (s *Selection) Contains(o *Object) bool {
	for _, obj := range s.objects {
		if obj == o {
			return true
		}
	}
	return false
}

// Front returns the first selected object, or nil when empty.
func (s *Selection) Front() *Object {
	if len(s.objects) == 0 {
		return nil
	}
	return s.objects[0]
}

// Size returns the number of selected objects.
func (s *Selection) Size() int {
	return len(s.objects)
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return len(s.objects) == 0
}
