// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/onboardingkit"
)

// OnboardingKitCreate is the builder for creating a OnboardingKit entity.
type OnboardingKitCreate struct {
	config
	mutation *OnboardingKitMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (_c *OnboardingKitCreate) SetClientID(v int) *OnboardingKitCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *OnboardingKitCreate) SetMonth(v int) *OnboardingKitCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *OnboardingKitCreate) SetGenerated(v bool) *OnboardingKitCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *OnboardingKitCreate) SetNillableGenerated(v *bool) *OnboardingKitCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *OnboardingKitCreate) SetGeneratedAt(v time.Time) *OnboardingKitCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *OnboardingKitCreate) SetNillableGeneratedAt(v *time.Time) *OnboardingKitCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OnboardingKitCreate) SetCreatedAt(v time.Time) *OnboardingKitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OnboardingKitCreate) SetNillableCreatedAt(v *time.Time) *OnboardingKitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClient sets the "client" edge to the Creator entity.
func (_c *OnboardingKitCreate) SetClient(v *Creator) *OnboardingKitCreate {
	return _c.SetClientID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *OnboardingKitCreate) AddDocumentIDs(ids ...int) *OnboardingKitCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *OnboardingKitCreate) AddDocuments(v ...*Document) *OnboardingKitCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the OnboardingKitMutation object of the builder.
func (_c *OnboardingKitCreate) Mutation() *OnboardingKitMutation {
	return _c.mutation
}

// Save creates the OnboardingKit in the database.
func (_c *OnboardingKitCreate) Save(ctx context.Context) (*OnboardingKit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnboardingKitCreate) SaveX(ctx context.Context) *OnboardingKit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingKitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingKitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnboardingKitCreate) defaults() {
	if _, ok := _c.mutation.Generated(); !ok {
		v := onboardingkit.DefaultGenerated
		_c.mutation.SetGenerated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := onboardingkit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnboardingKitCreate) check() error {
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "OnboardingKit.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := onboardingkit.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "OnboardingKit.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "OnboardingKit.month"`)}
	}
	if v, ok := _c.mutation.Month(); ok {
		if err := onboardingkit.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "OnboardingKit.month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "OnboardingKit.generated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OnboardingKit.created_at"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "OnboardingKit.client"`)}
	}
	return nil
}

func (_c *OnboardingKitCreate) sqlSave(ctx context.Context) (*OnboardingKit, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OnboardingKitCreate) createSpec() (*OnboardingKit, *sqlgraph.CreateSpec) {
	var (
		_node = &OnboardingKit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onboardingkit.Table, sqlgraph.NewFieldSpec(onboardingkit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(onboardingkit.FieldMonth, field.TypeInt, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(onboardingkit.FieldGenerated, field.TypeBool, value)
		_node.Generated = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(onboardingkit.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(onboardingkit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   onboardingkit.ClientTable,
			Columns: []string{onboardingkit.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creator.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   onboardingkit.DocumentsTable,
			Columns: []string{onboardingkit.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnboardingKitCreateBulk is the builder for creating many OnboardingKit entities in bulk.
type OnboardingKitCreateBulk struct {
	config
	err      error
	builders []*OnboardingKitCreate
}

// Save creates the OnboardingKit entities in the database.
func (_c *OnboardingKitCreateBulk) Save(ctx context.Context) ([]*OnboardingKit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnboardingKit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnboardingKitMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OnboardingKitCreateBulk) SaveX(ctx context.Context) []*OnboardingKit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingKitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingKitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
