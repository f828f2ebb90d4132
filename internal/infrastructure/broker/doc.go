// Package broker publishes order events to RabbitMQ for downstream consumers
// such as the generation pipeline.
package broker
