package provision_test

import (
	"context"
	"errors"
	"testing"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-tm1-tools/models"
	"github.com/ONSdigital/dp-tm1-tools/provision"
	"github.com/ONSdigital/dp-tm1-tools/provision/mock"
	"github.com/ONSdigital/dp-tm1-tools/schema"
	"github.com/ONSdigital/dp-tm1-tools/tm1"
	"github.com/ONSdigital/dp-tm1-tools/tm1/tm1test"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx     = context.Background()
	errTM1  = errors.New("tm1 is down")
	testDef = models.Schema{
		Dimensions: []models.Dimension{
			models.NewDimension("Year", models.NumericElements("2020", "2021")),
			models.NewDimension("Measure", models.NumericElements("value")),
		},
		Cubes: []models.Cube{
			{Name: "Sales", Dimensions: []string{"Year", "Measure"}},
		},
	}
)

func TestProvision(t *testing.T) {
	Convey("Given a server where nothing exists", t, func() {
		client := &mock.TM1ClientMock{
			DimensionExistsFunc: func(ctx context.Context, name string) (bool, error) { return false, nil },
			CreateDimensionFunc: func(ctx context.Context, d models.Dimension) error { return nil },
			CubeExistsFunc:      func(ctx context.Context, name string) (bool, error) { return false, nil },
			CreateCubeFunc:      func(ctx context.Context, c models.Cube) error { return nil },
		}
		p := provision.New(client)

		Convey("When the schema is provisioned", func() {
			report, err := p.Provision(ctx, testDef)

			Convey("Then every dimension then every cube is created in order", func() {
				So(err, ShouldBeNil)
				So(client.CreateDimensionCalls(), ShouldHaveLength, 2)
				So(client.CreateDimensionCalls()[0].D.Name, ShouldEqual, "Year")
				So(client.CreateDimensionCalls()[1].D.Name, ShouldEqual, "Measure")
				So(client.CreateCubeCalls(), ShouldHaveLength, 1)
				So(client.CreateCubeCalls()[0].C.Dimensions, ShouldResemble, []string{"Year", "Measure"})
			})

			Convey("And the report lists the created objects", func() {
				So(report.CreatedDimensions, ShouldResemble, []string{"Year", "Measure"})
				So(report.CreatedCubes, ShouldResemble, []string{"Sales"})
				So(report.ExistingDimensions, ShouldBeEmpty)
				So(report.Created(), ShouldEqual, 3)
			})
		})
	})

	Convey("Given a server where one dimension and the cube exist", t, func() {
		client := &mock.TM1ClientMock{
			DimensionExistsFunc: func(ctx context.Context, name string) (bool, error) { return name == "Year", nil },
			CreateDimensionFunc: func(ctx context.Context, d models.Dimension) error { return nil },
			CubeExistsFunc:      func(ctx context.Context, name string) (bool, error) { return true, nil },
			CreateCubeFunc:      func(ctx context.Context, c models.Cube) error { return nil },
		}

		Convey("When the schema is provisioned", func() {
			report, err := provision.New(client).Provision(ctx, testDef)

			Convey("Then only the missing dimension is created", func() {
				So(err, ShouldBeNil)
				So(client.CreateDimensionCalls(), ShouldHaveLength, 1)
				So(client.CreateDimensionCalls()[0].D.Name, ShouldEqual, "Measure")
				So(client.CreateCubeCalls(), ShouldBeEmpty)
				So(report.ExistingDimensions, ShouldResemble, []string{"Year"})
				So(report.ExistingCubes, ShouldResemble, []string{"Sales"})
			})
		})
	})

	Convey("Given an invalid schema", t, func() {
		client := &mock.TM1ClientMock{}
		invalid := models.Schema{
			Dimensions: testDef.Dimensions,
			Cubes:      []models.Cube{{Name: "Sales", Dimensions: []string{"Year", "Region"}}},
		}

		Convey("When it is provisioned", func() {
			report, err := provision.New(client).Provision(ctx, invalid)

			Convey("Then a validation error is returned before any request", func() {
				So(errors.Is(err, models.ErrUndeclaredDim), ShouldBeTrue)
				So(report, ShouldBeNil)
				So(client.DimensionExistsCalls(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a server failing to create the second dimension", t, func() {
		client := &mock.TM1ClientMock{
			DimensionExistsFunc: func(ctx context.Context, name string) (bool, error) { return false, nil },
			CreateDimensionFunc: func(ctx context.Context, d models.Dimension) error {
				if d.Name == "Measure" {
					return errTM1
				}
				return nil
			},
		}

		Convey("When the schema is provisioned", func() {
			report, err := provision.New(client).Provision(ctx, testDef)

			Convey("Then the error names the dimension and no cube is attempted", func() {
				So(errors.Is(err, errTM1), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "dimension Measure")
				So(client.CubeExistsCalls(), ShouldBeEmpty)
				So(report.CreatedDimensions, ShouldResemble, []string{"Year"})
			})
		})
	})
}

func TestProvisionSamples(t *testing.T) {
	Convey("Given an empty TM1 server", t, func() {
		srv := tm1test.NewServer()
		defer srv.Close()
		client := tm1.NewClient(tm1.Config{
			URL:      srv.URL(),
			User:     tm1test.DefaultUser,
			Password: tm1test.DefaultPassword,
			Timeout:  30 * time.Second,
		}, dphttp.NewClient())
		p := provision.New(client)

		Convey("When the samples are provisioned twice", func() {
			first, err := p.Provision(ctx, schema.Samples())
			So(err, ShouldBeNil)
			second, err := p.Provision(ctx, schema.Samples())
			So(err, ShouldBeNil)

			Convey("Then the first run creates everything", func() {
				So(first.CreatedDimensions, ShouldHaveLength, 10)
				So(first.CreatedCubes, ShouldResemble, []string{schema.FXRates, schema.Econ, schema.StockPrices})
				So(srv.CubeNames(), ShouldHaveLength, 3)
			})

			Convey("And the date dimension holds one element per day", func() {
				dates := srv.Elements(schema.Date, schema.Date)
				So(dates, ShouldHaveLength, 36891)
				So(dates[0], ShouldEqual, "1940-01-01")
				So(dates[len(dates)-1], ShouldEqual, "2040-12-31")
			})

			Convey("And the second run creates nothing", func() {
				So(second.Created(), ShouldEqual, 0)
				So(second.ExistingDimensions, ShouldResemble, first.CreatedDimensions)
				So(second.ExistingCubes, ShouldResemble, first.CreatedCubes)
			})
		})
	})
}
