package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mahesh-hegde/khoj/app/common"
	"github.com/mahesh-hegde/khoj/app/config"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/time/rate"
)

type errorResponse struct {
	Error string `json:"error"`
}

func jsonErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprintf("%v", he.Message)
		}
	}

	var uve *common.UserVisibleError
	if errors.As(err, &uve) {
		code = uve.HttpCode
		msg = uve.Message
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if !c.Response().Committed {
		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, errorResponse{Error: msg})
		}
		if sendErr != nil {
			c.Logger().Error(sendErr)
		}
	}
}

// NewEcho builds the HTTP API with its middleware chain. It does not start
// listening.
func NewEcho(controller *KhojController, khojConf *config.KhojConfig, serverConf config.ServerRuntimeConfig) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = jsonErrorHandler
	e.HideBanner = true

	if serverConf.CertDir != "" {
		e.Pre(middleware.HTTPSRedirect())
	}
	e.Pre(middleware.RemoveTrailingSlash())
	if serverConf.AcmeEnabled && len(khojConf.Hostnames) > 0 {
		canonical := khojConf.Hostnames[0]
		e.Pre(echo.MiddlewareFunc(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				req := c.Request()
				url := req.URL
				if req.Host != canonical {
					url.Host = canonical
					url.Scheme = "https"
					slog.Info("redirect to canonical hostname", "original_hostname", req.Host)
					return c.Redirect(http.StatusPermanentRedirect, url.String())
				}
				return next(c)
			}
		}))
	}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	var identifierExtractor middleware.Extractor

	if serverConf.BehindLoadBalancer {
		identifierExtractor = func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		}
	} else {
		identifierExtractor = func(ctx echo.Context) (string, error) {
			return ctx.Request().RemoteAddr, nil
		}
	}

	if serverConf.RateLimit > 0 {
		limiterConfig := middleware.RateLimiterConfig{
			Skipper: middleware.DefaultSkipper,
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(
				middleware.RateLimiterMemoryStoreConfig{
					Rate:      rate.Limit(serverConf.RateLimit),
					Burst:     3 * serverConf.RateLimit,
					ExpiresIn: 3 * time.Minute,
				},
			),
			IdentifierExtractor: identifierExtractor,
			ErrorHandler: func(context echo.Context, err error) error {
				return context.JSON(http.StatusForbidden, errorResponse{Error: "Forbidden"})
			},
			DenyHandler: func(context echo.Context, identifier string, err error) error {
				return context.JSON(http.StatusTooManyRequests, errorResponse{Error: "Too Many Requests"})
			},
		}

		e.Use(middleware.RateLimiterWithConfig(limiterConfig))
	}

	if serverConf.GzipLevel != 0 {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: serverConf.GzipLevel, MinLength: 512}))
	}

	if khojConf.TimeoutSeconds != 0 {
		e.Use(middleware.ContextTimeout(time.Duration(khojConf.TimeoutSeconds) * time.Second))
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogError:     true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogLatency:   khojConf.LogLatency,
		HandleError:  true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.LogAttrs(context.Background(), slog.LevelInfo, "REQUEST",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
					slog.String("remote_ip", v.RemoteIP),
					slog.String("request_id", v.RequestID),
				)
			} else {
				logger.LogAttrs(context.Background(), slog.LevelError, "REQUEST_ERROR",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
					slog.String("remote_ip", v.RemoteIP),
					slog.String("request_id", v.RequestID),
					slog.Int64("latency_ms", v.Latency.Milliseconds()),
				)
			}
			return nil
		},
	}))

	e.GET("/keywords", controller.GetKeywords)
	e.GET("/products", controller.SearchProducts)
	e.POST("/products", controller.CreateProduct)
	e.POST("/products/import", controller.ImportProducts)
	e.POST("/products/regenerate-keywords", controller.RegenerateKeywords)
	e.GET("/products/:id", controller.GetProduct).Name = "product"
	e.PUT("/products/:id", controller.UpdateProduct)
	e.DELETE("/products/:id", controller.DeleteProduct)

	return e
}

func StartServer(controller *KhojController, khojConf *config.KhojConfig, serverConf config.ServerRuntimeConfig) {
	e := NewEcho(controller, khojConf, serverConf)

	host := serverConf.Addr
	port := serverConf.Port
	certDir := serverConf.CertDir
	acme := serverConf.AcmeEnabled

	addr := fmt.Sprintf("%s:%d", host, port)
	slog.Info("starting server", "instance", khojConf.InstanceName, "addr", addr)

	if certDir != "" {
		if acme {
			slog.Info("using TLS with ACME", "dir", certDir)
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(khojConf.Hostnames...)
			e.AutoTLSManager.Cache = autocert.DirCache(certDir)
			e.Logger.Fatal(e.StartAutoTLS(addr))
		} else {
			slog.Info("using TLS with certDir", "dir", certDir)
			e.Logger.Fatal(e.StartTLS(addr, path.Join(certDir, "fullchain.pem"), path.Join(certDir, "privkey.pem")))
		}
	} else {
		e.Logger.Fatal(e.Start(addr))
	}
}
