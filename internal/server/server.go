package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/assessment"
	assessmentdomain "github.com/eduverse/eduverse/internal/assessment/domain"
	"github.com/eduverse/eduverse/internal/attendance"
	attendancedomain "github.com/eduverse/eduverse/internal/attendance/domain"
	"github.com/eduverse/eduverse/internal/batch"
	batchdomain "github.com/eduverse/eduverse/internal/batch/domain"
	"github.com/eduverse/eduverse/internal/config"
	"github.com/eduverse/eduverse/internal/institution"
	institutiondomain "github.com/eduverse/eduverse/internal/institution/domain"
	"github.com/eduverse/eduverse/internal/invoice"
	invoicedomain "github.com/eduverse/eduverse/internal/invoice/domain"
	"github.com/eduverse/eduverse/internal/observability"
	obsmiddleware "github.com/eduverse/eduverse/internal/observability/logger"
	obsmetrics "github.com/eduverse/eduverse/internal/observability/metrics"
	obstracing "github.com/eduverse/eduverse/internal/observability/tracing"
	"github.com/eduverse/eduverse/internal/student"
	studentdomain "github.com/eduverse/eduverse/internal/student/domain"
	"github.com/eduverse/eduverse/internal/user"
	userdomain "github.com/eduverse/eduverse/internal/user/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	institution.Module,
	user.Module,
	batch.Module,
	student.Module,
	attendance.Module,
	assessment.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	db             *gorm.DB
	genID          *snowflake.Node
	institutionSvc institutiondomain.Service
	userSvc        userdomain.Service
	batchSvc       batchdomain.Service
	studentSvc     studentdomain.Service
	attendanceSvc  attendancedomain.Service
	assessmentSvc  assessmentdomain.Service
	invoiceSvc     invoicedomain.Service
	obsMetrics     *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	GenID          *snowflake.Node
	InstitutionSvc institutiondomain.Service
	UserSvc        userdomain.Service
	BatchSvc       batchdomain.Service
	StudentSvc     studentdomain.Service
	AttendanceSvc  attendancedomain.Service
	AssessmentSvc  assessmentdomain.Service
	InvoiceSvc     invoicedomain.Service
	ObsMetrics     *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		genID:          p.GenID,
		institutionSvc: p.InstitutionSvc,
		userSvc:        p.UserSvc,
		batchSvc:       p.BatchSvc,
		studentSvc:     p.StudentSvc,
		attendanceSvc:  p.AttendanceSvc,
		assessmentSvc:  p.AssessmentSvc,
		invoiceSvc:     p.InvoiceSvc,
		obsMetrics:     p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	r := s.engine

	r.POST("/institutions", s.CreateInstitution)
	r.GET("/institutions", s.ListInstitutions)

	r.POST("/users", s.CreateUser)
	r.GET("/users", s.ListUsers)

	r.POST("/batches", s.CreateBatch)
	r.GET("/batches", s.ListBatches)

	r.POST("/students", s.CreateStudent)
	r.GET("/students", s.ListStudents)

	r.POST("/attendance", s.MarkAttendance)
	r.GET("/attendance", s.ListAttendance)
	r.GET("/analytics/attendance/trend", s.AttendanceTrend)

	r.POST("/invoices", s.CreateInvoice)
	r.GET("/invoices", s.ListInvoices)
	r.POST("/payments", s.RecordPayment)

	r.POST("/questions", s.CreateQuestion)
	r.POST("/tests", s.CreateTest)
	r.POST("/submissions", s.CreateSubmission)
}
