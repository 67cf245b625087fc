/*
Package observability provides Prometheus instrumentation for the Adapta
engine. Metrics plug into the engine through domain.LifecycleHooks, so the
core stays free of any metrics dependency.
*/
package observability
