package rank_test

import (
	"testing"

	"github.com/okian/marquee/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTopK(t *testing.T) {
	intLess := func(a, b int) bool { return a < b }

	Convey("Given a top-3 collector over ints", t, func() {
		top := rank.NewTopK(3, intLess)

		Convey("When fewer items than k are inserted", func() {
			top.Insert(5)
			top.Insert(1)

			Convey("Then all of them are kept, strongest first", func() {
				So(top.Len(), ShouldEqual, 2)
				So(top.Sorted(), ShouldResemble, []int{5, 1})
			})
		})

		Convey("When more items than k are inserted", func() {
			for _, v := range []int{4, 9, 1, 7, 3, 8, 2} {
				top.Insert(v)
			}

			Convey("Then only the k largest survive, in descending order", func() {
				So(top.Len(), ShouldEqual, 3)
				So(top.Sorted(), ShouldResemble, []int{9, 8, 7})
			})
		})

		Convey("When duplicates compete for the last slot", func() {
			for _, v := range []int{5, 5, 5, 5} {
				top.Insert(v)
			}

			Convey("Then exactly k are kept", func() {
				So(top.Len(), ShouldEqual, 3)
				So(top.Sorted(), ShouldResemble, []int{5, 5, 5})
			})
		})
	})

	Convey("Given a zero-sized collector", t, func() {
		top := rank.NewTopK(0, intLess)
		top.Insert(42)

		Convey("Then nothing is kept", func() {
			So(top.Len(), ShouldEqual, 0)
			So(top.Sorted(), ShouldBeEmpty)
		})
	})

	Convey("Given a composite ordering", t, func() {
		type scored struct {
			rating float64
			votes  int
		}
		less := func(a, b scored) bool {
			if a.rating != b.rating {
				return a.rating < b.rating
			}
			return a.votes < b.votes
		}
		top := rank.NewTopK(2, less)
		top.Insert(scored{8.0, 100})
		top.Insert(scored{8.0, 900})
		top.Insert(scored{7.5, 5000})

		Convey("Then ties fall back to the secondary key", func() {
			So(top.Sorted(), ShouldResemble, []scored{{8.0, 900}, {8.0, 100}})
		})
	})
}
