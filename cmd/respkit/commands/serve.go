package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	v10 "github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/lightspeed-go/respkit/config"
	"github.com/lightspeed-go/respkit/ecode"
	"github.com/lightspeed-go/respkit/i18n"
	"github.com/lightspeed-go/respkit/logging/logger"
	"github.com/lightspeed-go/respkit/net/resp"
	"github.com/lightspeed-go/respkit/validation/validator"
)

// NewServeCommand creates the serve command running the demo server.
func NewServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo envelope server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "conf", "c", "", "path to config file")

	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.StandardLogger()
	cleanup, err := log.Init(cfg.Logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var envOpts []resp.Option
	if cfg.Catalog != "" {
		catalog, err := i18n.NewCatalog(cfg.Catalog)
		if err != nil {
			return err
		}
		catalog.Watch(func(c *i18n.Catalog) {
			log.Infof(context.Background(), "reloaded %d catalog entries", c.Len())
		})
		envOpts = append(envOpts, resp.WithResolver(catalog))
	}
	sendOpts := cfg.Response.SendOptions()

	if cfg.RunMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), resp.Middleware(envOpts...))

	validate := v10.New()

	r.GET("/ping", func(c *gin.Context) {
		e := resp.FromContext(c)
		e.SetField("pong", true)
		e.MarkSuccess(ecode.Success("ping"))
		resp.Write(c, e, sendOpts...)
	})

	r.POST("/users", func(c *gin.Context) {
		e := resp.FromContext(c)

		var req struct {
			Name  string `json:"name" validate:"required"`
			Email string `json:"email" validate:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Warn(c.Request.Context(), "invalid request body", err)
			e.MarkError(ecode.FieldIsInvalid("body"), nil)
			resp.Write(c, e, append(sendOpts, resp.WithStatus(http.StatusBadRequest))...)
			return
		}
		if err := validate.Struct(req); err != nil {
			e.MarkError(ecode.Failed("user"), validator.FieldErrors(err))
			e.AddDebug(err.Error(), "validation")
			resp.Write(c, e, append(sendOpts, resp.WithStatus(http.StatusBadRequest))...)
			return
		}

		e.SetField("name", req.Name)
		e.SetField("email", req.Email)
		e.MarkSuccess(ecode.Success("user"))
		resp.Write(c, e, sendOpts...)
	})

	r.GET("/old-path", func(c *gin.Context) {
		e := resp.FromContext(c)
		e.Redirect("/ping")
		resp.Write(c, e, sendOpts...)
	})

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Infof(context.Background(), "listening on %s", addr)
	return r.Run(addr)
}
