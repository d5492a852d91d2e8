package ecs

import "fmt"

// UnknownEntityError reports an operation on an id that is not in the
// Enabled/Disabled/DisabledDueToAncestor states.
type UnknownEntityError struct{ Entity Entity }

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("ecs: entity %d is not live", e.Entity)
}

// ComponentMissingError reports an operation requiring a component the
// entity (or chunk row) does not carry.
type ComponentMissingError struct{ Entity Entity }

func (e ComponentMissingError) Error() string {
	return fmt.Sprintf("ecs: entity %d is missing the requested component", e.Entity)
}

// ComponentAlreadyPresentError reports AddComponent on a type the entity
// already carries.
type ComponentAlreadyPresentError struct{ Entity Entity }

func (e ComponentAlreadyPresentError) Error() string {
	return fmt.Sprintf("ecs: entity %d already has the component", e.Entity)
}

// ArrayMissingError reports an array operation on a type the entity has no
// array blob for.
type ArrayMissingError struct{ Entity Entity }

func (e ArrayMissingError) Error() string {
	return fmt.Sprintf("ecs: entity %d has no array of the requested type", e.Entity)
}

// ArrayAlreadyPresentError reports CreateArray on a type the entity already
// has an array blob for.
type ArrayAlreadyPresentError struct{ Entity Entity }

func (e ArrayAlreadyPresentError) Error() string {
	return fmt.Sprintf("ecs: entity %d already has an array of that type", e.Entity)
}

// InvalidParentError reports a self-parent or ancestor-cycle attempt.
type InvalidParentError struct{ Entity, Parent Entity }

func (e InvalidParentError) Error() string {
	return fmt.Sprintf("ecs: entity %d cannot be parented to %d", e.Entity, e.Parent)
}

// SchemaFullError reports a registration past MaxBits for one kind.
type SchemaFullError struct{ Kind kind }

func (e SchemaFullError) Error() string {
	names := [...]string{"component/tag", "array"}
	return fmt.Sprintf("ecs: schema is full for %s types (max %d)", names[e.Kind], MaxBits)
}

// ConcurrentModificationError reports a structural mutation observed
// during query iteration in a checked build.
type ConcurrentModificationError struct{}

func (e ConcurrentModificationError) Error() string {
	return "ecs: chunk mutated during query iteration"
}
