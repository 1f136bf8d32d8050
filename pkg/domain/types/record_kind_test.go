package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
)

func TestRecordKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind types.RecordKind
		want bool
	}{
		{name: "dated memo", kind: types.RecordKindDatedMemo, want: true},
		{name: "empty", kind: types.RecordKind(""), want: false},
		{name: "other kind", kind: types.RecordKind("todo_item"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.kind.IsValid()).Equal(tt.want)
		})
	}
}

func TestParseRecordKind(t *testing.T) {
	kind, err := types.ParseRecordKind("dated_memo")
	gt.NoError(t, err).Required()
	gt.Value(t, kind).Equal(types.RecordKindDatedMemo)

	_, err = types.ParseRecordKind("memo")
	gt.Error(t, err)
}

func TestAllRecordKinds(t *testing.T) {
	for _, k := range types.AllRecordKinds() {
		gt.Bool(t, k.IsValid()).True()
	}
}
