package memory

import (
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"

	"pitlane-backend-go/internal/store"
)

// matches evaluates one predicate against a document field value. An
// unknown operator matches nothing.
func matches(docVal, operand any, op string) bool {
	c, comparable := compareValues(docVal, operand)
	switch op {
	case store.OpEqual:
		if comparable {
			return c == 0
		}
		return reflect.DeepEqual(docVal, operand)
	case store.OpNotEqual:
		if comparable {
			return c != 0
		}
		return !reflect.DeepEqual(docVal, operand)
	case store.OpGreater:
		return comparable && c > 0
	case store.OpGreaterEqual:
		return comparable && c >= 0
	case store.OpLess:
		return comparable && c < 0
	case store.OpLessEqual:
		return comparable && c <= 0
	default:
		return false
	}
}

// compareValues orders two field values. Times compare chronologically,
// numbers numerically (int and float64 operands mix freely), everything
// else falls back to string comparison. The second return is false when
// the pair cannot be ordered.
func compareValues(a, b any) (int, bool) {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt), true
		}
		return 0, false
	}
	if _, ok := b.(time.Time); ok {
		return 0, false
	}

	af, errA := cast.ToFloat64E(a)
	bf, errB := cast.ToFloat64E(b)
	if errA == nil && errB == nil {
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	as, errA := cast.ToStringE(a)
	bs, errB := cast.ToStringE(b)
	if errA == nil && errB == nil {
		return strings.Compare(as, bs), true
	}
	return 0, false
}
