package dom

// This file adapts the teacher's flat, unbatched MutationCallback dispatcher
// (mutation_callback.go) into the spec's MutationObserver (§4.11): per-target
// registration with options, ancestor-walk delivery, a drained pending-record
// queue, and an explicit delivery point rather than an automatic one — per
// spec §6.4 ("embedders are responsible for ... scheduling observer callback
// delivery"), this core never invokes an observer's callback on its own; it
// only ever queues records and hands them back via TakeRecords or
// DeliverMutationRecords.

// MutationRecordType names the kind of change a MutationRecord describes.
type MutationRecordType string

const (
	MutationChildList     MutationRecordType = "childList"
	MutationAttributes    MutationRecordType = "attributes"
	MutationCharacterData MutationRecordType = "characterData"
)

// MutationRecord describes a single observed change, mirroring the DOM
// MutationRecord interface.
type MutationRecord struct {
	Type               MutationRecordType
	Target             *Node
	AddedNodes         []*Node
	RemovedNodes       []*Node
	PreviousSibling    *Node
	NextSibling        *Node
	AttributeName      string
	AttributeNamespace string
	// OldValue is populated only when the matching registration requested
	// attributeOldValue / characterDataOldValue; otherwise it is empty,
	// which is indistinguishable from an empty old value — callers that
	// need to tell the two apart should not request the option.
	OldValue string
}

// MutationObserverInit mirrors the MutationObserverInit dictionary.
// AttributeFilter, when non-nil, restricts "attributes" records to the
// listed names; a nil slice means "no filter" (all attributes admitted), so
// the zero value observes nothing filtered rather than nothing at all.
type MutationObserverInit struct {
	ChildList             bool
	Attributes            bool
	CharacterData         bool
	Subtree               bool
	AttributeOldValue     bool
	CharacterDataOldValue bool
	AttributeFilter       []string
}

func (o MutationObserverInit) admitsAttribute(name string) bool {
	if o.AttributeFilter == nil {
		return true
	}
	for _, f := range o.AttributeFilter {
		if f == name {
			return true
		}
	}
	return false
}

// MutationObserverCallback receives a batch of records whenever the core (or
// an embedder, per spec §6.4) delivers them.
type MutationObserverCallback func(records []*MutationRecord, observer *MutationObserver)

// observerRegistration pairs a MutationObserver with the options it was
// given for one particular observed node. Stored in that node's rare data
// (spec §4.1's rare_data, §4.11).
type observerRegistration struct {
	observer *MutationObserver
	options  MutationObserverInit
}

// MutationObserver batches mutation records for later delivery. The zero
// value is not usable; construct with NewMutationObserver.
type MutationObserver struct {
	callback MutationObserverCallback
	pending  []*MutationRecord
	targets  []*Node
	docs     map[*Document]bool
}

// NewMutationObserver creates an observer that will batch records for cb.
func NewMutationObserver(cb MutationObserverCallback) *MutationObserver {
	return &MutationObserver{callback: cb, docs: make(map[*Document]bool)}
}

// Observe registers mo on target with the given options (spec §4.11). A
// second call for the same target replaces its options rather than adding a
// duplicate registration. Returns a TypeError-shaped *DOMError if none of
// childList, attributes, or characterData is set — the options dictionary
// describes nothing to observe.
func (mo *MutationObserver) Observe(target *Node, options MutationObserverInit) error {
	if target == nil {
		return ErrNotFound("MutationObserver.observe: target must not be nil")
	}
	if !options.ChildList && !options.Attributes && !options.CharacterData {
		return &DOMError{Name: "TypeError", Message: "options must enable childList, attributes, or characterData"}
	}

	r := rareOf(target)
	for _, reg := range r.observers {
		if reg.observer == mo {
			reg.options = options
			return nil
		}
	}
	r.observers = append(r.observers, &observerRegistration{observer: mo, options: options})
	mo.targets = append(mo.targets, target)

	if doc := target.ownerDoc; doc != nil && !mo.docs[doc] {
		mo.docs[doc] = true
		RegisterMutationCallback(doc, mo)
		RegisterTeardown(doc, func() { delete(mo.docs, doc) })
	}
	return nil
}

// Disconnect stops observation on every target and discards any
// already-queued, undelivered records (spec's disconnect() algorithm).
func (mo *MutationObserver) Disconnect() {
	for _, target := range mo.targets {
		if target.rare == nil {
			continue
		}
		regs := target.rare.observers[:0]
		for _, reg := range target.rare.observers {
			if reg.observer != mo {
				regs = append(regs, reg)
			}
		}
		target.rare.observers = regs
	}
	mo.targets = nil
	for doc := range mo.docs {
		UnregisterMutationCallback(doc, mo)
		delete(mo.docs, doc)
	}
	mo.pending = nil
}

// TakeRecords synchronously drains and returns mo's pending queue without
// invoking the callback (spec's takeRecords()).
func (mo *MutationObserver) TakeRecords() []*MutationRecord {
	records := mo.pending
	mo.pending = nil
	return records
}

// registrationFor walks target's inclusive ancestor chain looking for the
// nearest registration belonging to mo that admits this mutation: the
// target's own registration (subtree or not) or an ancestor's registration
// with Subtree set. Matches spec §4.11's "for every ancestor of the
// mutation target (or the target itself)".
func registrationFor(mo *MutationObserver, target *Node, admits func(MutationObserverInit) bool) *MutationObserverInit {
	for n, depth := target, 0; n != nil; n, depth = n.parentNode, depth+1 {
		if n.rare == nil {
			continue
		}
		for _, reg := range n.rare.observers {
			if reg.observer != mo {
				continue
			}
			if depth > 0 && !reg.options.Subtree {
				continue
			}
			if !admits(reg.options) {
				continue
			}
			opts := reg.options
			return &opts
		}
	}
	return nil
}

// OnChildListMutation implements MutationCallback for childList changes.
func (mo *MutationObserver) OnChildListMutation(target *Node, added, removed []*Node, prevSib, nextSib *Node) {
	opts := registrationFor(mo, target, func(o MutationObserverInit) bool { return o.ChildList })
	if opts == nil {
		return
	}
	mo.pending = append(mo.pending, &MutationRecord{
		Type:            MutationChildList,
		Target:          target,
		AddedNodes:      added,
		RemovedNodes:    removed,
		PreviousSibling: prevSib,
		NextSibling:     nextSib,
	})
}

// OnAttributeMutation implements MutationCallback for attribute changes.
func (mo *MutationObserver) OnAttributeMutation(target *Node, attributeName, attributeNamespace, oldValue string) {
	opts := registrationFor(mo, target, func(o MutationObserverInit) bool {
		return o.Attributes && o.admitsAttribute(attributeName)
	})
	if opts == nil {
		return
	}
	rec := &MutationRecord{
		Type:               MutationAttributes,
		Target:             target,
		AttributeName:      attributeName,
		AttributeNamespace: attributeNamespace,
	}
	if opts.AttributeOldValue {
		rec.OldValue = oldValue
	}
	mo.pending = append(mo.pending, rec)
}

// OnCharacterDataMutation implements MutationCallback for full character
// data replacement (e.g. nodeValue assignment).
func (mo *MutationObserver) OnCharacterDataMutation(target *Node, oldValue string) {
	opts := registrationFor(mo, target, func(o MutationObserverInit) bool { return o.CharacterData })
	if opts == nil {
		return
	}
	rec := &MutationRecord{Type: MutationCharacterData, Target: target}
	if opts.CharacterDataOldValue {
		rec.OldValue = oldValue
	}
	mo.pending = append(mo.pending, rec)
}

// OnReplaceData implements MutationCallback for the "replace data" algorithm
// (appendData/insertData/deleteData/replaceData), which is a
// characterData mutation for observer purposes; the precise offset/count
// this carries is Range-only and not part of MutationRecord.
func (mo *MutationObserver) OnReplaceData(target *Node, offset, count int, data string) {
	opts := registrationFor(mo, target, func(o MutationObserverInit) bool { return o.CharacterData })
	if opts == nil {
		return
	}
	rec := &MutationRecord{Type: MutationCharacterData, Target: target}
	if opts.CharacterDataOldValue {
		rec.OldValue = target.NodeValue()
	}
	mo.pending = append(mo.pending, rec)
}

// DeliverMutationRecords invokes the callback of every MutationObserver
// registered anywhere in doc that currently has pending records, then clears
// their queues — the "perform a microtask checkpoint" quiescent point of
// spec §4.11, exposed explicitly because this core has no event loop of its
// own to pick that point for it (spec §6.4).
func (d *Document) DeliverMutationRecords() {
	for _, cb := range mutationCallbacks[d] {
		mo, ok := cb.(*MutationObserver)
		if !ok || len(mo.pending) == 0 {
			continue
		}
		records := mo.TakeRecords()
		if mo.callback != nil {
			mo.callback(records, mo)
		}
	}
}
