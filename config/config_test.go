package config

import (
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given an environment with no environment variables set", t, func() {
		os.Clearenv()
		cfg = nil
		cfg, err := Get()

		Convey("When the config values are retrieved", func() {

			Convey("Then there should be no error returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the values should be set to the expected defaults", func() {
				So(cfg.TM1Address, ShouldEqual, "localhost")
				So(cfg.TM1Port, ShouldEqual, "5000")
				So(cfg.TM1SSL, ShouldBeTrue)
				So(cfg.TM1BaseURL, ShouldEqual, "")
				So(cfg.TM1User, ShouldEqual, "admin")
				So(cfg.TM1Password, ShouldEqual, "")
				So(cfg.TM1Namespace, ShouldEqual, "")
				So(cfg.DefaultRequestTimeout, ShouldEqual, 10*time.Second)
				So(cfg.GracefulShutdownTimeout, ShouldEqual, 5*time.Second)
				So(cfg.SweepPatterns, ShouldResemble, []string{"^temp_*", "^test*", "^TM1py*"})
			})

			Convey("Then a second call to config should return the same config", func() {
				newCfg, newErr := Get()
				So(newErr, ShouldBeNil)
				So(newCfg, ShouldResemble, cfg)
			})
		})
	})

	Convey("Given an environment overriding the TM1 connection", t, func() {
		os.Clearenv()
		cfg = nil
		os.Setenv("TM1_ADDRESS", "tm1.example.com")
		os.Setenv("TM1_PORT", "12354")
		os.Setenv("TM1_SSL", "false")
		os.Setenv("SWEEP_PATTERNS", "^tmp_,^scratch")
		defer func() {
			os.Clearenv()
			cfg = nil
		}()

		cfg, err := Get()
		So(err, ShouldBeNil)
		So(cfg.SweepPatterns, ShouldResemble, []string{"^tmp_", "^scratch"})

		Convey("Then the TM1 URL is derived from address, port and ssl", func() {
			So(cfg.TM1URL(), ShouldEqual, "http://tm1.example.com:12354")
		})

		Convey("Then a base URL takes precedence", func() {
			cfg.TM1BaseURL = "http://127.0.0.1:8080"
			So(cfg.TM1URL(), ShouldEqual, "http://127.0.0.1:8080")
		})
	})

	Convey("Given an environment with a zero graceful shutdown timeout", t, func() {
		os.Clearenv()
		cfg = nil
		os.Setenv("GRACEFUL_SHUTDOWN_TIMEOUT", "0s")
		defer func() {
			os.Clearenv()
			cfg = nil
		}()

		_, err := Get()

		Convey("Then the config is rejected", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "GRACEFUL_SHUTDOWN_TIMEOUT")
		})
	})

	Convey("Given an environment with a negative request timeout", t, func() {
		os.Clearenv()
		cfg = nil
		os.Setenv("DEFAULT_REQUEST_TIMEOUT", "-1s")
		defer func() {
			os.Clearenv()
			cfg = nil
		}()

		_, err := Get()

		Convey("Then the config is rejected", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "DEFAULT_REQUEST_TIMEOUT")
		})
	})
}
