package report_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okian/marquee/internal/domain/model"
	"github.com/okian/marquee/internal/domain/report"
	. "github.com/smartystreets/goconvey/convey"
)

// sliceSource serves records straight from a slice, mirroring the
// dataset store's filter semantics.
type sliceSource []model.Movie

func (s sliceSource) ByYear(year int) []model.Movie {
	var out []model.Movie
	for _, m := range s {
		if m.Year == year && m.Year != 0 {
			out = append(out, m)
		}
	}
	return out
}

func (s sliceSource) ByGenre(genre string) []model.Movie {
	var out []model.Movie
	for _, m := range s {
		if m.InGenre(genre) {
			out = append(out, m)
		}
	}
	return out
}

func rated(title string, year int, rating float64, votes int) model.Movie {
	return model.Movie{Title: title, Year: year, Rating: rating, HasRating: true, Votes: votes}
}

func TestByYear(t *testing.T) {
	ctx := context.Background()

	Convey("Given a year with several rated movies", t, func() {
		src := sliceSource{
			rated("Middling", 2009, 7.0, 500),
			rated("Best", 2009, 9.1, 200),
			rated("Worst", 2009, 3.2, 40),
			{Title: "Unrated", Year: 2009, RuntimeMinutes: 200, HasRuntime: true},
			rated("Other Year", 2010, 9.9, 10),
		}
		src[0].RuntimeMinutes, src[0].HasRuntime = 100, true
		src[1].RuntimeMinutes, src[1].HasRuntime = 120, true

		gen := report.NewGenerator(src)
		rep, err := gen.ByYear(ctx, 2009)
		So(err, ShouldBeNil)

		Convey("Then the highest rating dominates every other record", func() {
			So(rep.Highest.Title, ShouldEqual, "Best")
			for _, m := range src.ByYear(2009) {
				if m.HasRating {
					So(rep.Highest.Rating, ShouldBeGreaterThanOrEqualTo, m.Rating)
				}
			}
		})

		Convey("Then the lowest rating is dominated by every other record", func() {
			So(rep.Lowest.Title, ShouldEqual, "Worst")
		})

		Convey("Then the runtime mean covers the year's records with a runtime", func() {
			So(rep.AvgRuntime, ShouldAlmostEqual, (100.0+120.0+200.0)/3.0, 1e-9)
			So(rep.RuntimeCount, ShouldEqual, 3)
		})

		Convey("Then only rated records are counted", func() {
			So(rep.Count, ShouldEqual, 3)
		})
	})

	Convey("Given rating ties", t, func() {
		src := sliceSource{
			rated("Few Votes High", 1984, 8.0, 10),
			rated("Many Votes High", 1984, 8.0, 9000),
			rated("Few Votes Low", 1984, 2.0, 5),
			rated("Many Votes Low", 1984, 2.0, 7000),
		}
		gen := report.NewGenerator(src)

		rep, err := gen.ByYear(ctx, 1984)
		So(err, ShouldBeNil)

		Convey("Then both extremes break ties toward more votes", func() {
			So(rep.Highest.Title, ShouldEqual, "Many Votes High")
			So(rep.Lowest.Title, ShouldEqual, "Many Votes Low")
		})
	})

	Convey("Given a year with no rated movies", t, func() {
		src := sliceSource{
			{Title: "Unrated", Year: 1931},
		}
		gen := report.NewGenerator(src)

		_, err := gen.ByYear(ctx, 1931)

		Convey("Then the result is ErrNoMatch", func() {
			So(errors.Is(err, report.ErrNoMatch), ShouldBeTrue)
		})
	})

	Convey("Given a year absent from the dataset", t, func() {
		gen := report.NewGenerator(sliceSource{rated("Only", 2000, 5.0, 1)})

		_, err := gen.ByYear(ctx, 1800)

		Convey("Then the result is ErrNoMatch, not a crash", func() {
			So(errors.Is(err, report.ErrNoMatch), ShouldBeTrue)
		})
	})
}

func TestByGenre(t *testing.T) {
	ctx := context.Background()

	Convey("Given movies across genres", t, func() {
		drama1 := rated("D1", 2001, 7.5, 1)
		drama1.Genres = []string{"Drama"}
		drama2 := rated("D2", 2002, 8.5, 1)
		drama2.Genres = []string{"drama", "Crime"}
		comedy := rated("C1", 2001, 4.0, 1)
		comedy.Genres = []string{"Comedy"}
		unratedDrama := model.Movie{Title: "D3", Genres: []string{"Drama"}}

		gen := report.NewGenerator(sliceSource{drama1, drama2, comedy, unratedDrama})

		Convey("When reporting on Drama", func() {
			rep, err := gen.ByGenre(ctx, "Drama")
			So(err, ShouldBeNil)

			Convey("Then the count covers rated matches regardless of case", func() {
				So(rep.Count, ShouldEqual, 2)
			})

			Convey("Then the average equals the arithmetic mean", func() {
				So(rep.AvgRating, ShouldAlmostEqual, 8.0, 1e-9)
			})
		})

		Convey("When reporting on an absent genre", func() {
			_, err := gen.ByGenre(ctx, "Western")

			Convey("Then the result is ErrNoMatch", func() {
				So(errors.Is(err, report.ErrNoMatch), ShouldBeTrue)
			})
		})
	})
}

func TestTopByVotes(t *testing.T) {
	ctx := context.Background()

	Convey("Given more rated movies than the list size", t, func() {
		var src sliceSource
		for i := 0; i < 15; i++ {
			src = append(src, rated(fmt.Sprintf("M%02d", i), 1994, float64(i)*0.5, (i+1)*100))
		}
		gen := report.NewGenerator(src)

		list, err := gen.TopByVotes(ctx, 1994)
		So(err, ShouldBeNil)

		Convey("Then the list holds exactly ten entries", func() {
			So(len(list), ShouldEqual, 10)
		})

		Convey("Then ratings descend and ranks count from one", func() {
			for i, e := range list {
				So(e.Rank, ShouldEqual, i+1)
				if i > 0 {
					So(e.Movie.Rating, ShouldBeLessThanOrEqualTo, list[i-1].Movie.Rating)
				}
			}
		})
	})

	Convey("Given fewer movies than the list size", t, func() {
		src := sliceSource{
			rated("A", 1994, 9.0, 1000),
			rated("B", 1994, 8.0, 100),
			{Title: "No Votes", Year: 1994, Rating: 9.9, HasRating: true, Votes: 0},
			{Title: "No Rating", Year: 1994, Votes: 500},
		}
		gen := report.NewGenerator(src)

		list, err := gen.TopByVotes(ctx, 1994)
		So(err, ShouldBeNil)

		Convey("Then only the voted, rated movies make the list", func() {
			So(len(list), ShouldEqual, 2)
			So(list[0].Movie.Title, ShouldEqual, "A")
			So(list[1].Movie.Title, ShouldEqual, "B")
		})

		Convey("Then the leader's bar spans at most the configured width", func() {
			// leadVotes 1000, width 80 -> divisor 13
			So(list[0].Likes, ShouldBeLessThanOrEqualTo, 80)
			So(list[0].Likes, ShouldEqual, 77) // ceil(1000/13)
			So(list[1].Likes, ShouldEqual, 8)  // ceil(100/13)
		})
	})

	Convey("Given a tiny vote leader", t, func() {
		src := sliceSource{
			rated("Lead", 1960, 9.0, 3),
			rated("Tail", 1960, 8.0, 1),
		}
		gen := report.NewGenerator(src)

		list, err := gen.TopByVotes(ctx, 1960)
		So(err, ShouldBeNil)

		Convey("Then the divisor never drops below one", func() {
			So(list[0].Likes, ShouldEqual, 3)
			So(list[1].Likes, ShouldEqual, 1)
		})
	})

	Convey("Given rating ties", t, func() {
		src := sliceSource{
			rated("Tied Few", 1975, 8.0, 10),
			rated("Tied Many", 1975, 8.0, 999),
		}
		gen := report.NewGenerator(src)

		list, err := gen.TopByVotes(ctx, 1975)
		So(err, ShouldBeNil)

		Convey("Then more votes rank first", func() {
			So(list[0].Movie.Title, ShouldEqual, "Tied Many")
		})
	})

	Convey("Given a custom list size", t, func() {
		src := sliceSource{
			rated("A", 2020, 9.0, 10),
			rated("B", 2020, 8.0, 10),
			rated("C", 2020, 7.0, 10),
		}
		gen := report.NewGenerator(src, report.WithTopN(2))

		list, err := gen.TopByVotes(ctx, 2020)
		So(err, ShouldBeNil)

		Convey("Then the list is truncated to it", func() {
			So(len(list), ShouldEqual, 2)
		})
	})

	Convey("Given no qualifying movies", t, func() {
		gen := report.NewGenerator(sliceSource{
			{Title: "Voteless", Year: 2021, Rating: 5.0, HasRating: true},
		})

		_, err := gen.TopByVotes(ctx, 2021)

		Convey("Then the result is ErrNoMatch", func() {
			So(errors.Is(err, report.ErrNoMatch), ShouldBeTrue)
		})
	})
}

func TestAvgRuntime(t *testing.T) {
	ctx := context.Background()

	Convey("Given a year with runtimes", t, func() {
		src := sliceSource{
			{Title: "A", Year: 1999, RuntimeMinutes: 90, HasRuntime: true},
			{Title: "B", Year: 1999, RuntimeMinutes: 120, HasRuntime: true},
			{Title: "C", Year: 1999}, // no runtime recorded
		}
		gen := report.NewGenerator(src)

		avg, n, err := gen.AvgRuntime(ctx, 1999)

		Convey("Then the mean covers only records with a runtime", func() {
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
			So(avg, ShouldAlmostEqual, 105.0, 1e-9)
		})
	})

	Convey("Given a year without runtimes", t, func() {
		gen := report.NewGenerator(sliceSource{{Title: "A", Year: 1999}})

		_, _, err := gen.AvgRuntime(ctx, 1999)

		Convey("Then the result is ErrNoMatch", func() {
			So(errors.Is(err, report.ErrNoMatch), ShouldBeTrue)
		})
	})
}
