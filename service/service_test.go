package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-tm1-tools/config"
	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/dp-tm1-tools/service"
	serviceMock "github.com/ONSdigital/dp-tm1-tools/service/mock"
	"github.com/ONSdigital/dp-tm1-tools/tm1/tm1test"

	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx = context.Background()

	defaultGetTM1Client = service.GetTM1Client

	errLogin  = fmt.Errorf("login error")
	errLogout = fmt.Errorf("logout error")
	errRun    = fmt.Errorf("run error")
)

func testConfig() *config.Config {
	return &config.Config{
		TM1Address:              "localhost",
		TM1Port:                 "5000",
		TM1User:                 tm1test.DefaultUser,
		TM1Password:             tm1test.DefaultPassword,
		DefaultRequestTimeout:   5 * time.Second,
		GracefulShutdownTimeout: time.Second,
		SweepPatterns:           []string{"^temp_*", "^test*", "^TM1py*"},
	}
}

func TestRun(t *testing.T) {
	Convey("Having a mocked TM1 client", t, func() {
		cfg := testConfig()
		tm1Mock := &serviceMock.TM1ClientMock{
			LoginFunc:  func(ctx context.Context) error { return nil },
			LogoutFunc: func(ctx context.Context) error { return nil },
		}
		service.GetTM1Client = func(cfg *config.Config) service.TM1Client {
			return tm1Mock
		}

		Convey("When Run is called with a successful function", func() {
			called := false
			err := service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
				called = true
				So(svc.Cfg, ShouldPointTo, cfg)
				So(svc.TM1, ShouldPointTo, tm1Mock)
				return nil
			})

			Convey("Then the session is opened, used and closed", func() {
				So(err, ShouldBeNil)
				So(called, ShouldBeTrue)
				So(tm1Mock.LoginCalls(), ShouldHaveLength, 1)
				So(tm1Mock.LogoutCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When the function fails", func() {
			err := service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
				return errRun
			})

			Convey("Then its error is returned and the session is still closed", func() {
				So(errors.Is(err, errRun), ShouldBeTrue)
				So(tm1Mock.LogoutCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When the function panics", func() {
			run := func() {
				_ = service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
					panic("boom")
				})
			}

			Convey("Then the panic is propagated after the session is closed", func() {
				So(run, ShouldPanicWith, "boom")
				So(tm1Mock.LogoutCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When the context is cancelled before the session is closed", func() {
			cctx, cancel := context.WithCancel(ctx)
			var logoutErr error
			tm1Mock.LogoutFunc = func(ctx context.Context) error {
				logoutErr = ctx.Err()
				return nil
			}
			err := service.Run(cctx, cfg, func(ctx context.Context, svc *service.Service) error {
				cancel()
				return ctx.Err()
			})

			Convey("Then the logout still runs with a live context", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(tm1Mock.LogoutCalls(), ShouldHaveLength, 1)
				So(logoutErr, ShouldBeNil)
			})
		})

		Convey("When login fails", func() {
			tm1Mock.LoginFunc = func(ctx context.Context) error { return errLogin }
			called := false
			err := service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
				called = true
				return nil
			})

			Convey("Then the function is not called and close is still attempted", func() {
				So(errors.Is(err, errLogin), ShouldBeTrue)
				So(called, ShouldBeFalse)
				So(tm1Mock.LogoutCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When logout fails after a successful function", func() {
			tm1Mock.LogoutFunc = func(ctx context.Context) error { return errLogout }
			err := service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
				return nil
			})

			Convey("Then the logout error is returned", func() {
				So(errors.Is(err, errLogout), ShouldBeTrue)
			})
		})

		Convey("When logout fails after a failed function", func() {
			tm1Mock.LogoutFunc = func(ctx context.Context) error { return errLogout }
			err := service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
				return errRun
			})

			Convey("Then the function error is kept", func() {
				So(errors.Is(err, errRun), ShouldBeTrue)
			})
		})

		Convey("When Run is called with a nil config", func() {
			err := service.Run(ctx, nil, func(ctx context.Context, svc *service.Service) error {
				return nil
			})

			Convey("Then it fails without creating a client", func() {
				So(err, ShouldNotBeNil)
				So(tm1Mock.LoginCalls(), ShouldBeEmpty)
				So(tm1Mock.LogoutCalls(), ShouldBeEmpty)
			})
		})
	})
}

func TestCheck(t *testing.T) {
	Convey("Having a mocked TM1 client reporting a healthy server", t, func() {
		tm1Mock := &serviceMock.TM1ClientMock{
			CheckerFunc: func(ctx context.Context, state *healthcheck.CheckState) error {
				return state.Update(healthcheck.StatusOK, "tm1 is ok, server name: Planning", 200)
			},
		}
		svc := &service.Service{Cfg: testConfig(), TM1: tm1Mock}

		Convey("When the check runs", func() {
			state, err := svc.Check(ctx)

			Convey("Then the state of the TM1 check is returned", func() {
				So(err, ShouldBeNil)
				So(state.Name(), ShouldEqual, "TM1")
				So(state.Status(), ShouldEqual, healthcheck.StatusOK)
				So(state.Message(), ShouldContainSubstring, "Planning")
			})
		})
	})
}

func TestCleanup(t *testing.T) {
	Convey("Having a service with a mocked TM1 client", t, func() {
		svc := &service.Service{Cfg: testConfig(), TM1: &serviceMock.TM1ClientMock{}}

		Convey("When cleanup is called with an invalid pattern", func() {
			report, err := svc.Cleanup(ctx, []string{"["}, false)

			Convey("Then it fails before any request", func() {
				So(err, ShouldNotBeNil)
				So(report, ShouldBeNil)
			})
		})
	})
}

func TestOperations(t *testing.T) {
	Convey("Given an in-memory TM1 server and a config pointing at it", t, func() {
		srv := tm1test.NewServer()
		defer srv.Close()

		cfg := testConfig()
		cfg.TM1BaseURL = srv.URL()
		service.GetTM1Client = defaultGetTM1Client

		schema := models.Schema{
			Dimensions: []models.Dimension{
				models.NewDimension("TM1py Year", models.NumericElements("2020", "2021")),
				models.NewDimension("TM1py Measure", models.NumericElements("value")),
			},
			Cubes: []models.Cube{
				{Name: "TM1py Sales", Dimensions: []string{"TM1py Year", "TM1py Measure"}},
			},
		}

		Convey("When setup, cell counts and cleanup run in one session", func() {
			err := service.Run(ctx, cfg, func(ctx context.Context, svc *service.Service) error {
				created, err := svc.Setup(ctx, schema)
				So(err, ShouldBeNil)
				So(created.Created(), ShouldEqual, 3)

				cells, err := svc.CellCounts(ctx)
				So(err, ShouldBeNil)
				So(cells, ShouldHaveLength, 1)
				So(cells[0].Cells.Int64(), ShouldEqual, 2)

				dry, err := svc.Cleanup(ctx, cfg.SweepPatterns, true)
				So(err, ShouldBeNil)
				So(dry.Total(), ShouldEqual, 3)
				So(srv.CubeNames(), ShouldHaveLength, 1)

				report, err := svc.Cleanup(ctx, cfg.SweepPatterns, false)
				So(err, ShouldBeNil)
				So(report.Cubes(), ShouldResemble, []string{"TM1py Sales"})
				So(report.Dimensions(), ShouldResemble, []string{"TM1py Measure", "TM1py Year"})
				return nil
			})

			Convey("Then the server is left empty and the session closed", func() {
				So(err, ShouldBeNil)
				So(srv.CubeNames(), ShouldBeEmpty)
				So(srv.DimensionNames(), ShouldBeEmpty)
				So(srv.Logouts(), ShouldEqual, 1)
				So(srv.OpenSessions(), ShouldEqual, 0)
			})
		})
	})
}
