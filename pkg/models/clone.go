package models

// Clone returns a deep copy of the itinerary. The change engine copies the
// aggregate at apply boundaries so in-flight mutations never alias the
// caller's view.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := *it
	out.Days = CloneDays(it.Days)
	out.Trip.Interests = cloneStrings(it.Trip.Interests)
	return &out
}

// CloneDays deep-copies a day list. Used for revision snapshots as well as
// apply-time copies.
func CloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i := range days {
		out[i] = days[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := d
	if d.Nodes != nil {
		out.Nodes = make([]Node, len(d.Nodes))
		for i := range d.Nodes {
			out.Nodes[i] = d.Nodes[i].Clone()
		}
	}
	if d.Edges != nil {
		out.Edges = make([]Edge, len(d.Edges))
		copy(out.Edges, d.Edges)
	}
	return out
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := n
	if n.Location != nil {
		loc := *n.Location
		if n.Location.Coordinates != nil {
			coords := *n.Location.Coordinates
			loc.Coordinates = &coords
		}
		out.Location = &loc
	}
	if n.Timing != nil {
		t := *n.Timing
		out.Timing = &t
	}
	if n.Cost != nil {
		c := *n.Cost
		out.Cost = &c
	}
	if n.Details != nil {
		out.Details = make(map[string]any, len(n.Details))
		for k, v := range n.Details {
			out.Details[k] = v
		}
	}
	out.Tips = cloneStrings(n.Tips)
	out.Links = cloneStrings(n.Links)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
