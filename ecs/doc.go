// Package ecs provides ECS adapters for bramble.
package ecs
