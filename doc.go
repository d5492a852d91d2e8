/*
Package ecs provides an archetype-based Entity-Component-System runtime.

It organises entities (opaque 32-bit identifiers) against compact,
column-oriented arrays of plain-old-data components, plus per-entity
variable-length arrays and zero-size tags. Systems mutate the store
through typed queries; a small in-process event bus dispatches lifecycle
and application messages to subscribed listeners.

Core Concepts:

  - Entity: an opaque identifier naming a row across the World.
  - Component: a fixed-size value attached to an entity.
  - Tag: a zero-size marker attached via an entity's archetype mask.
  - Array: a variable-length, per-entity buffer of one registered element type.
  - Chunk: storage for every entity sharing one archetype (component+tag) mask.
  - Query: a traversal across Chunks matching a required/excluded filter.

Basic Usage:

	schema := ecs.NewSchema()
	world := ecs.NewWorld(schema)

	posIdx, _ := ecs.RegisterComponent[Position](schema)
	velIdx, _ := ecs.RegisterComponent[Velocity](schema)

	var mask ecs.BitMask
	mask.Set(posIdx)
	mask.Set(velIdx)
	e := world.Create(mask)
	pos, _ := ecs.GetComponent[Position](world, e)
	*pos = Position{X: 1, Y: 2}
	vel, _ := ecs.GetComponent[Velocity](world, e)
	*vel = Velocity{X: 3, Y: 4}

	ecs.ForEach2(world, func(_ ecs.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

The archetype store (Schema, BitMask, Chunk, World, query engine) is this
package's core; source generation, a higher-level typed-entity façade, a
program scheduler, and the full event/listener plumbing are treated as
external collaborators and are out of scope.
*/
package ecs
