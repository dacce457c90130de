package inheritance_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/totegamma/permgraph/core"
	. "github.com/totegamma/permgraph/x/inheritance"
)

func TestMerge(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "inheritance merge suite")
}

var _ = Describe("merge", func() {
	DescribeTable("single field",
		func(strategy core.MergeStrategy, parent any, parentHas bool, child any, childHas bool, expected any, expectedHas bool) {
			merged, has := MergeValue(strategy, parent, parentHas, child, childHas)
			Expect(has).To(Equal(expectedHas))
			if !expectedHas {
				return
			}
			if expected == nil {
				Expect(merged).To(BeNil())
				return
			}
			Expect(merged).To(Equal(expected))
		},
		Entry("child overrides keeps child", core.MergeChildOverrides, "p", true, "c", true, "c", true),
		Entry("child overrides falls back to parent", core.MergeChildOverrides, "p", true, nil, false, "p", true),
		Entry("empty strategy acts as child overrides", core.MergeStrategy(""), "p", true, "c", true, "c", true),
		Entry("parent priority keeps parent", core.MergeParentPriority, "p", true, "c", true, "p", true),
		Entry("parent priority keeps a null parent", core.MergeParentPriority, nil, true, "c", true, nil, true),
		Entry("parent priority falls back to child", core.MergeParentPriority, nil, false, "c", true, "c", true),
		Entry("merge unions arrays",
			core.MergeUnion, []any{"a", "b"}, true, []any{"b", "c"}, true, []any{"a", "b", "c"}, true),
		Entry("merge combines objects with child winning",
			core.MergeUnion,
			map[string]any{"x": 1.0, "y": 1.0}, true,
			map[string]any{"y": 2.0, "z": 2.0}, true,
			map[string]any{"x": 1.0, "y": 2.0, "z": 2.0}, true),
		Entry("merge of scalars keeps child", core.MergeUnion, "p", true, "c", true, "c", true),
		Entry("merge of mixed kinds keeps child", core.MergeUnion, []any{"a"}, true, "c", true, "c", true),
		Entry("merge with absent child keeps parent", core.MergeUnion, []any{"a"}, true, nil, false, []any{"a"}, true),
		Entry("intersect arrays",
			core.MergeIntersect, []any{"a", "b", "c"}, true, []any{"c", "b", "d"}, true, []any{"b", "c"}, true),
		Entry("intersect of disjoint arrays is empty",
			core.MergeIntersect, []any{"a"}, true, []any{"b"}, true, []any{}, true),
		Entry("intersect of objects keeps child",
			core.MergeIntersect, map[string]any{"x": 1.0}, true, map[string]any{"y": 1.0}, true, map[string]any{"y": 1.0}, true),
		Entry("intersect with absent child stays absent", core.MergeIntersect, []any{"a"}, true, nil, false, nil, false),
	)

	Describe("documents", func() {
		parent := map[string]any{
			"time":     map[string]any{"start_time": "09:00", "end_time": "17:00"},
			"location": map[string]any{"allowed_ips": []any{"10.0.0.0/8"}, "allowed_countries": []any{"JP", "US"}},
		}
		child := map[string]any{
			"time":      map[string]any{"start_time": "10:00"},
			"location":  map[string]any{"allowed_ips": []any{"192.168.0.0/16"}, "allowed_countries": []any{"US"}},
			"overrides": map[string]any{"parent_id": "x"},
		}

		It("uses child overrides when nothing is configured", func() {
			merged := MergeConditions(parent, child, nil)
			Expect(merged).To(HaveKeyWithValue("time", child["time"]))
			Expect(merged).To(HaveKeyWithValue("location", child["location"]))
			Expect(merged).To(HaveKeyWithValue("overrides", child["overrides"]))
		})

		It("applies a clause level strategy", func() {
			merged := MergeConditions(parent, child, map[string]core.MergeStrategy{"time": core.MergeUnion})
			Expect(merged["time"]).To(Equal(map[string]any{"start_time": "10:00", "end_time": "17:00"}))
		})

		It("applies field level strategies", func() {
			merged := MergeConditions(parent, child, map[string]core.MergeStrategy{
				"location.allowed_ips":       core.MergeUnion,
				"location.allowed_countries": core.MergeIntersect,
			})
			Expect(merged["location"]).To(Equal(map[string]any{
				"allowed_ips":       []any{"10.0.0.0/8", "192.168.0.0/16"},
				"allowed_countries": []any{"US"},
			}))
		})

		It("drops the parent overrides record", func() {
			merged := MergeConditions(map[string]any{"overrides": map[string]any{"parent_id": "y"}}, map[string]any{}, nil)
			Expect(merged).NotTo(HaveKey("overrides"))
		})
	})

	Describe("apply", func() {
		weight := 0.25
		parent := core.Permission{ID: "parent", Effect: core.EffectDeny, Priority: 980}
		child := core.Permission{ID: "child", Effect: core.EffectAllow, Priority: 100}

		DescribeTable("priority",
			func(parentPriority int, weight *float64, expected int) {
				p := parent
				p.Priority = parentPriority
				result, err := ApplyInheritance(p, child, core.PermissionInheritance{ID: "e", Type: core.InheritancePriority, Weight: weight})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Priority).To(Equal(expected))
				Expect(result.Effect).To(Equal(core.EffectAllow))
			},
			Entry("default weight adds ten", 500, nil, 510),
			Entry("configured weight", 500, &weight, 525),
			Entry("clamped at the maximum", 980, &weight, 1000),
		)

		It("records an override without changing the effect", func() {
			result, err := ApplyInheritance(parent, child, core.PermissionInheritance{ID: "e", Type: core.InheritanceOverride, Reason: "incident"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Effect).To(Equal(core.EffectAllow))
			Expect(result.Conditions.Overrides).To(Equal(&core.OverrideRecord{
				ParentID:       "parent",
				OriginalEffect: core.EffectDeny,
				Reason:         "incident",
			}))
			Expect(result.Metadata).To(HaveKeyWithValue(core.MetadataInheritanceType, "override"))
		})

		It("is idempotent for full inheritance", func() {
			p := parent
			p.Conditions.Time = &core.TimeClause{StartTime: "09:00", EndTime: "17:00"}
			c := child
			c.Conditions.Location = &core.LocationClause{AllowedCountries: []string{"JP"}}
			e := core.PermissionInheritance{ID: "e", Type: core.InheritanceFull}

			once, err := ApplyInheritance(p, c, e)
			Expect(err).NotTo(HaveOccurred())
			twice, err := ApplyInheritance(p, once, e)
			Expect(err).NotTo(HaveOccurred())
			Expect(twice).To(Equal(once))
			Expect(once.Effect).To(Equal(core.EffectDeny))
			Expect(once.Priority).To(Equal(980))
		})

		It("rejects unknown types", func() {
			_, err := ApplyInheritance(parent, child, core.PermissionInheritance{Type: "copy"})
			Expect(err).To(HaveOccurred())
		})
	})
})
