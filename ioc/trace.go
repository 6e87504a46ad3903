package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// InitZipkinTracer 初始化全局的 tracer provider,
// gorm 的 tracing 插件與 egin 的鏈路都掛在它上面
func InitZipkinTracer() *trace.TracerProvider {
	type ZipkinConfig struct {
		ServiceName string `yaml:"serviceName"`
		Endpoint    string `yaml:"endpoint"`
	}
	var cfg ZipkinConfig
	if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		elog.Panic("讀取 zipkin 配置失敗", elog.FieldErr(err))
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		elog.Panic("構造 trace resource 失敗", elog.FieldErr(err))
	}

	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		elog.Panic("初始化 zipkin exporter 失敗", elog.FieldErr(err))
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res))

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))
	return tp
}
