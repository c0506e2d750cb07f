package storage

import (
	"sort"
	"unsafe"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// DictionarySegment is the dictionary-encoded column (C4): a sorted,
// duplicate-free dictionary of T plus an AttributeVector of value-ids, one
// per logical row. Grounded on the original dictionary_segment.cpp's
// two-phase build (collect+sort into a std::set, then fill the attribute
// vector) and its null-id convention, settled by the spec's Open Question
// in §9: nullable columns reserve id 0 for NULL and offset dictionary
// entries by -1; non-nullable columns use the id as the dictionary offset
// directly and NullValueID() returns INVALID_VALUE_ID.
type DictionarySegment[T types.Scalar] struct {
	dictionary []T
	attr       *AttributeVector
	nullable   bool
}

// NullValueID returns the ValueId that marks NULL in the attribute
// vector, or types.InvalidValueID if the segment is not nullable.
func (s *DictionarySegment[T]) NullValueID() types.ValueId {
	if !s.nullable {
		return types.InvalidValueID
	}
	return 0
}

// BuildDictionarySegment compresses a value segment into its
// dictionary-encoded equivalent (§4.3's "Construction" algorithm).
func BuildDictionarySegment[T types.Scalar](src *ValueSegment[T]) (*DictionarySegment[T], error) {
	n := src.Size()
	nullable := src.IsNullable()

	unique := make(map[T]struct{})
	for i := 0; i < n; i++ {
		v, ok := src.GetTyped(i)
		if !ok {
			continue
		}
		if types.IsNaN(v) {
			return nil, d.New(d.InvalidArgument, "NaN is not a valid column value at row %d", i)
		}
		unique[v] = struct{}{}
	}

	dictionary := make([]T, 0, len(unique))
	for v := range unique {
		dictionary = append(dictionary, v)
	}
	sort.Slice(dictionary, func(i, j int) bool { return types.Less(dictionary[i], dictionary[j]) })

	idBase := uint64(0)
	if nullable {
		idBase = 1
	}
	maxValueID := uint64(0)
	if len(dictionary) > 0 {
		maxValueID = idBase + uint64(len(dictionary)) - 1
	}

	attr, err := NewAttributeVector(n, maxValueID)
	if err != nil {
		return nil, err
	}

	index := make(map[T]types.ValueId, len(dictionary))
	for i, v := range dictionary {
		index[v] = types.ValueId(uint64(i) + idBase)
	}

	seg := &DictionarySegment[T]{dictionary: dictionary, attr: attr, nullable: nullable}
	nullID := seg.NullValueID()
	for i := 0; i < n; i++ {
		v, ok := src.GetTyped(i)
		if !ok {
			attr.Set(i, nullID)
			continue
		}
		attr.Set(i, index[v])
	}
	return seg, nil
}

func (s *DictionarySegment[T]) Size() int { return s.attr.Len() }

func (s *DictionarySegment[T]) IsNullable() bool { return s.nullable }

func (s *DictionarySegment[T]) IsNull(i int) bool {
	return s.attr.Get(i) == s.NullValueID()
}

func (s *DictionarySegment[T]) offsetOf(id types.ValueId) int {
	if s.nullable {
		return int(id) - 1
	}
	return int(id)
}

// Get returns the value at row i, failing null-dereference if it is null.
func (s *DictionarySegment[T]) Get(i int) (T, error) {
	var zero T
	if s.IsNull(i) {
		return zero, d.New(d.NullDereference, "dictionary segment index %d is null", i)
	}
	return s.dictionary[s.offsetOf(s.attr.Get(i))], nil
}

// At implements Segment.
func (s *DictionarySegment[T]) At(i int) types.Value {
	if s.IsNull(i) {
		return types.Null()
	}
	v, _ := s.Get(i)
	return types.ValueOf(v)
}

// Dictionary exposes the sorted unique-value table.
func (s *DictionarySegment[T]) Dictionary() []T { return s.dictionary }

func (s *DictionarySegment[T]) AttributeVector() *AttributeVector { return s.attr }

func (s *DictionarySegment[T]) UniqueValuesCount() int { return len(s.dictionary) }

// LowerBound returns the dictionary offset (a ValueId in dictionary-index
// space, i.e. without the nullable +1 offset applied) of the first entry
// >= v, or types.InvalidValueID if v is past the end.
func (s *DictionarySegment[T]) LowerBound(v T) types.ValueId {
	idx := sort.Search(len(s.dictionary), func(i int) bool { return !types.Less(s.dictionary[i], v) })
	if idx == len(s.dictionary) {
		return types.InvalidValueID
	}
	return types.ValueId(idx)
}

// UpperBound returns the dictionary offset of the first entry > v, or
// types.InvalidValueID if none exists.
func (s *DictionarySegment[T]) UpperBound(v T) types.ValueId {
	idx := sort.Search(len(s.dictionary), func(i int) bool { return types.Less(v, s.dictionary[i]) })
	if idx == len(s.dictionary) {
		return types.InvalidValueID
	}
	return types.ValueId(idx)
}

func (s *DictionarySegment[T]) EstimateMemoryUsage() uint64 {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	dictBytes := elemSize * uint64(len(s.dictionary))
	if types.TypeTag[T]() == types.String {
		dictBytes = 0
		for _, v := range s.dictionary {
			dictBytes += uint64(len(any(v).(string)))
		}
	}
	return dictBytes + s.attr.EstimateMemoryUsage()
}
