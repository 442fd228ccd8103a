package report

import (
	"testing"

	"tfa/internal/domain"
)

func failure(name, group string, tag domain.CategoryTag) domain.ClassifiedFailure {
	return domain.ClassifiedFailure{
		Result:   domain.TestResult{TestName: name},
		Group:    group,
		Category: tag,
	}
}

func TestGroupByCategory_DescendingBySize(t *testing.T) {
	failures := []domain.ClassifiedFailure{
		failure("a", "perl", domain.CategoryUnknown),
		failure("b", "perl", domain.CategoryMetalink),
		failure("c", "perl", domain.CategoryMetalink),
		failure("d", "python", domain.CategoryMetalink),
		failure("e", "python", domain.CategoryTimeout),
		failure("f", "python", domain.CategoryTimeout),
	}

	groups := GroupByCategory(failures)

	expected := []domain.CategoryTag{
		domain.CategoryMetalink, // 3
		domain.CategoryTimeout,  // 2
		domain.CategoryUnknown,  // 1
	}
	if len(groups) != len(expected) {
		t.Fatalf("expected %d groups, got %d", len(expected), len(groups))
	}
	for i, tag := range expected {
		if groups[i].Category != tag {
			t.Errorf("group %d: expected %s, got %s", i, tag, groups[i].Category)
		}
	}
}

func TestGroupByCategory_TiesKeepDiscoveryOrder(t *testing.T) {
	failures := []domain.ClassifiedFailure{
		failure("a", "perl", domain.CategoryTimeout),
		failure("b", "perl", domain.CategoryMetalink),
		failure("c", "python", domain.CategoryUnknown),
	}

	groups := GroupByCategory(failures)

	// All sizes are equal, so first-encountered order must survive the sort.
	expected := []domain.CategoryTag{
		domain.CategoryTimeout,
		domain.CategoryMetalink,
		domain.CategoryUnknown,
	}
	for i, tag := range expected {
		if groups[i].Category != tag {
			t.Errorf("group %d: expected %s, got %s", i, tag, groups[i].Category)
		}
	}
}

func TestGroupByCategory_MembersKeepInsertionOrder(t *testing.T) {
	failures := []domain.ClassifiedFailure{
		failure("first", "perl", domain.CategoryMetalink),
		failure("second", "python", domain.CategoryMetalink),
		failure("third", "perl", domain.CategoryMetalink),
	}

	groups := GroupByCategory(failures)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	for i, name := range []string{"first", "second", "third"} {
		if groups[0].Failures[i].Result.TestName != name {
			t.Errorf("member %d: expected %s, got %s", i, name, groups[0].Failures[i].Result.TestName)
		}
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
