package sweep_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/dp-tm1-tools/sweep"
	"github.com/ONSdigital/dp-tm1-tools/sweep/mock"
	"github.com/ONSdigital/dp-tm1-tools/tm1"
	"github.com/ONSdigital/dp-tm1-tools/tm1/tm1test"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx       = context.Background()
	errDelete = errors.New("delete refused")
)

func newMatcher() *sweep.Matcher {
	m, err := sweep.NewMatcher("^temp_*", "^test*", "^TM1py*")
	if err != nil {
		panic(err)
	}
	return m
}

// newClientMock returns a client holding the provided objects, where every deletion succeeds
func newClientMock(cubes, dims, processes []string, views map[string][]models.View, subsets map[string][]string) *mock.TM1ClientMock {
	return &mock.TM1ClientMock{
		CubeNamesFunc:  func(ctx context.Context) ([]string, error) { return cubes, nil },
		DeleteCubeFunc: func(ctx context.Context, name string) error { return nil },
		ViewsFunc: func(ctx context.Context, cube string) ([]models.View, []models.View, error) {
			var private, public []models.View
			for _, v := range views[cube] {
				if v.Private {
					private = append(private, v)
				} else {
					public = append(public, v)
				}
			}
			return private, public, nil
		},
		DeleteViewFunc:      func(ctx context.Context, cube, name string, private bool) error { return nil },
		DimensionNamesFunc:  func(ctx context.Context) ([]string, error) { return dims, nil },
		DeleteDimensionFunc: func(ctx context.Context, name string) error { return nil },
		SubsetNamesFunc: func(ctx context.Context, dimension, hierarchy string, private bool) ([]string, error) {
			return subsets[dimension], nil
		},
		DeleteSubsetFunc:  func(ctx context.Context, dimension, hierarchy, name string, private bool) error { return nil },
		ProcessNamesFunc:  func(ctx context.Context) ([]string, error) { return processes, nil },
		DeleteProcessFunc: func(ctx context.Context, name string) error { return nil },
	}
}

func TestSweepCubes(t *testing.T) {
	Convey("Given a matching cube and a non matching cube with views", t, func() {
		client := newClientMock(
			[]string{"temp_cube", "Sales"}, nil, nil,
			map[string][]models.View{
				"temp_cube": {{Cube: "temp_cube", Name: "Default"}},
				"Sales": {
					{Cube: "Sales", Name: "test_mine", Private: true},
					{Cube: "Sales", Name: "Default"},
					{Cube: "Sales", Name: "TEMP_shared"},
				},
			},
			nil,
		)

		Convey("When the sweep runs", func() {
			report, err := sweep.New(client, newMatcher()).Sweep(ctx)
			So(err, ShouldBeNil)

			Convey("Then the matching cube is deleted without inspecting its views", func() {
				So(client.DeleteCubeCalls(), ShouldHaveLength, 1)
				So(client.DeleteCubeCalls()[0].Name, ShouldEqual, "temp_cube")
				So(client.ViewsCalls(), ShouldHaveLength, 1)
				So(client.ViewsCalls()[0].Cube, ShouldEqual, "Sales")
			})

			Convey("And the matching views of the other cube are deleted, private first", func() {
				So(client.DeleteViewCalls(), ShouldHaveLength, 2)
				So(client.DeleteViewCalls()[0].Name, ShouldEqual, "test_mine")
				So(client.DeleteViewCalls()[0].Private, ShouldBeTrue)
				So(client.DeleteViewCalls()[1].Name, ShouldEqual, "TEMP_shared")
				So(client.DeleteViewCalls()[1].Private, ShouldBeFalse)
			})

			Convey("And the report lists every deleted object", func() {
				So(report.Cubes(), ShouldResemble, []string{"temp_cube"})
				So(report.Views(), ShouldResemble, []models.View{
					{Cube: "Sales", Name: "TEMP_shared"},
					{Cube: "Sales", Name: "test_mine", Private: true},
				})
				So(report.Total(), ShouldEqual, 3)
				So(report.DryRun, ShouldBeFalse)
			})
		})
	})
}

func TestSweepDimensions(t *testing.T) {
	Convey("Given system, matching and non matching dimensions", t, func() {
		client := newClientMock(
			nil,
			[]string{"}ElementAttributes_temp_dim", "}Hierarchies_test", "temp_dim", "Region", "}Clients"},
			nil, nil,
			map[string][]string{
				"temp_dim": {"temp_subset"},
				"Region":   {"All", "tm1py_north"},
				"}Clients": {"Default"},
			},
		)

		Convey("When the sweep runs", func() {
			report, err := sweep.New(client, newMatcher()).Sweep(ctx)
			So(err, ShouldBeNil)

			Convey("Then system dimensions are never touched", func() {
				So(client.DeleteDimensionCalls(), ShouldHaveLength, 1)
				So(client.DeleteDimensionCalls()[0].Name, ShouldEqual, "temp_dim")
				for _, call := range client.SubsetNamesCalls() {
					So(call.Dimension, ShouldNotStartWith, "}ElementAttributes_")
					So(call.Dimension, ShouldNotStartWith, "}Hierarchies_")
				}
			})

			Convey("And the subsets of a deleted dimension are not inspected", func() {
				So(client.SubsetNamesCalls(), ShouldHaveLength, 2)
				So(client.SubsetNamesCalls()[0].Dimension, ShouldEqual, "Region")
				So(client.SubsetNamesCalls()[0].Hierarchy, ShouldEqual, "Region")
				So(client.SubsetNamesCalls()[0].Private, ShouldBeFalse)
				So(client.SubsetNamesCalls()[1].Dimension, ShouldEqual, "}Clients")
			})

			Convey("And matching public subsets are deleted", func() {
				So(client.DeleteSubsetCalls(), ShouldHaveLength, 1)
				So(client.DeleteSubsetCalls()[0].Name, ShouldEqual, "tm1py_north")
				So(report.Subsets(), ShouldResemble, []models.Subset{
					{Dimension: "Region", Hierarchy: "Region", Name: "tm1py_north"},
				})
				So(report.Dimensions(), ShouldResemble, []string{"temp_dim"})
			})
		})
	})
}

func TestSweepProcesses(t *testing.T) {
	Convey("Given processes matched by several patterns", t, func() {
		client := newClientMock(nil, nil, []string{"test_temp_load", "load", "TM1py load"}, nil, nil)

		Convey("When the sweep runs", func() {
			report, err := sweep.New(client, newMatcher()).Sweep(ctx)

			Convey("Then every matching process is deleted once", func() {
				So(err, ShouldBeNil)
				So(client.DeleteProcessCalls(), ShouldHaveLength, 2)
				So(report.Processes(), ShouldResemble, []string{"TM1py load", "test_temp_load"})
			})
		})
	})
}

func TestSweepDryRun(t *testing.T) {
	Convey("Given matching objects of every kind", t, func() {
		client := newClientMock(
			[]string{"temp_cube", "Sales"},
			[]string{"temp_dim", "Region"},
			[]string{"test_load"},
			map[string][]models.View{"Sales": {{Cube: "Sales", Name: "temp_view"}}},
			map[string][]string{"Region": {"temp_subset"}},
		)

		Convey("When a dry run sweep runs", func() {
			report, err := sweep.New(client, newMatcher(), sweep.WithDryRun()).Sweep(ctx)

			Convey("Then nothing is deleted", func() {
				So(err, ShouldBeNil)
				So(client.DeleteCubeCalls(), ShouldBeEmpty)
				So(client.DeleteViewCalls(), ShouldBeEmpty)
				So(client.DeleteDimensionCalls(), ShouldBeEmpty)
				So(client.DeleteSubsetCalls(), ShouldBeEmpty)
				So(client.DeleteProcessCalls(), ShouldBeEmpty)
			})

			Convey("And the report lists what would be deleted", func() {
				So(report.DryRun, ShouldBeTrue)
				So(report.Cubes(), ShouldResemble, []string{"temp_cube"})
				So(report.Dimensions(), ShouldResemble, []string{"temp_dim"})
				So(report.Processes(), ShouldResemble, []string{"test_load"})
				So(report.Total(), ShouldEqual, 5)
			})

			Convey("And the children of matching parents are still skipped", func() {
				So(client.ViewsCalls(), ShouldHaveLength, 1)
				So(client.SubsetNamesCalls(), ShouldHaveLength, 1)
			})
		})
	})
}

func TestSweepFailure(t *testing.T) {
	Convey("Given a server refusing to delete the second matching cube", t, func() {
		client := newClientMock([]string{"temp_a", "temp_b", "temp_c"}, []string{"temp_dim"}, nil, nil, nil)
		client.DeleteCubeFunc = func(ctx context.Context, name string) error {
			if name == "temp_b" {
				return errDelete
			}
			return nil
		}

		Convey("When the sweep runs", func() {
			report, err := sweep.New(client, newMatcher()).Sweep(ctx)

			Convey("Then the sweep stops with the error and the partial report", func() {
				So(errors.Is(err, errDelete), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "cube temp_b")
				So(report.Cubes(), ShouldResemble, []string{"temp_a"})
				So(client.DeleteCubeCalls(), ShouldHaveLength, 2)
				So(client.DimensionNamesCalls(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a server failing to list dimensions", t, func() {
		client := newClientMock([]string{"temp_a"}, nil, nil, nil, nil)
		client.DimensionNamesFunc = func(ctx context.Context) ([]string, error) { return nil, errDelete }

		Convey("When the sweep runs", func() {
			report, err := sweep.New(client, newMatcher()).Sweep(ctx)

			Convey("Then the deleted cubes are still reported", func() {
				So(errors.Is(err, errDelete), ShouldBeTrue)
				So(report.Cubes(), ShouldResemble, []string{"temp_a"})
				So(client.ProcessNamesCalls(), ShouldBeEmpty)
			})
		})
	})
}

func TestSweepServer(t *testing.T) {
	Convey("Given a TM1 server holding temporary objects", t, func() {
		srv := tm1test.NewServer()
		defer srv.Close()
		srv.AddDimension("Year", "2020")
		srv.AddDimension("Measure", "value")
		srv.AddDimension("temp_dim", "a")
		srv.AddDimension("}ElementAttributes_temp_dim")
		srv.AddSubset("Year", "temp_years", false)
		srv.AddSubset("Year", "temp_private", true)
		srv.AddCube("temp_cube", "Year", "temp_dim")
		srv.AddView("temp_cube", "temp_view", false)
		srv.AddCube("Sales", "Year", "Measure")
		srv.AddView("Sales", "Default", false)
		srv.AddView("Sales", "test_view", true)
		srv.AddProcess("TM1py load")
		srv.AddProcess("load")

		client := tm1.NewClient(tm1.Config{
			URL:      srv.URL(),
			User:     tm1test.DefaultUser,
			Password: tm1test.DefaultPassword,
			Timeout:  5 * time.Second,
		}, dphttp.NewClient())

		Convey("When the sweep runs", func() {
			report, err := sweep.New(client, newMatcher()).Sweep(ctx)
			So(err, ShouldBeNil)

			Convey("Then only the permanent objects remain", func() {
				So(srv.CubeNames(), ShouldResemble, []string{"Sales"})
				So(srv.ViewNames("Sales", false), ShouldResemble, []string{"Default"})
				So(srv.ViewNames("Sales", true), ShouldBeEmpty)
				So(srv.DimensionNames(), ShouldResemble, []string{"Year", "Measure", "}ElementAttributes_temp_dim"})
				So(srv.SubsetNames("Year", false), ShouldBeEmpty)
				So(srv.ProcessNames(), ShouldResemble, []string{"load"})
			})

			Convey("And private subsets are left alone", func() {
				So(srv.SubsetNames("Year", true), ShouldResemble, []string{"temp_private"})
			})

			Convey("And the views of the deleted cube were never requested", func() {
				So(srv.RequestCount(http.MethodGet, "/api/v1/Cubes('temp_cube')/Views"), ShouldEqual, 0)
				So(srv.RequestCount(http.MethodGet, "/api/v1/Cubes('temp_cube')/PrivateViews"), ShouldEqual, 0)
				So(srv.RequestCount(http.MethodGet, "/api/v1/Cubes('Sales')/Views"), ShouldEqual, 1)
			})

			Convey("And the report matches the deletions", func() {
				So(report.Cubes(), ShouldResemble, []string{"temp_cube"})
				So(report.Dimensions(), ShouldResemble, []string{"temp_dim"})
				So(report.Total(), ShouldEqual, 5)
			})
		})
	})
}
