package gir

import "github.com/jacoelho/gir/internal/schema"

// Function is a free function, a constructor, or a static inline function.
type Function struct {
	callable
	returnValue *ReturnValue
	parameters  *Parameters
}

// ReturnValue returns the return value description.
func (f *Function) ReturnValue() *ReturnValue { return f.returnValue }

// Parameters returns the parameter list.
func (f *Function) Parameters() *Parameters { return f.parameters }

// Method is a function taking an instance as its first argument.
type Method struct {
	callable
	getProperty *string
	setProperty *string
	returnValue *ReturnValue
	parameters  *Parameters
}

// GetProperty returns the property this method is the getter of.
func (m *Method) GetProperty() string { return str(m.getProperty) }

// SetProperty returns the property this method is the setter of.
func (m *Method) SetProperty() string { return str(m.setProperty) }

// ReturnValue returns the return value description.
func (m *Method) ReturnValue() *ReturnValue { return m.returnValue }

// Parameters returns the parameter list.
func (m *Method) Parameters() *Parameters { return m.parameters }

// VirtualMethod is a class or interface vfunc.
type VirtualMethod struct {
	callable
	invoker     *string
	returnValue *ReturnValue
	parameters  *Parameters
}

// Invoker returns the method that invokes this vfunc.
func (v *VirtualMethod) Invoker() string { return str(v.invoker) }

// ReturnValue returns the return value description.
func (v *VirtualMethod) ReturnValue() *ReturnValue { return v.returnValue }

// Parameters returns the parameter list.
func (v *VirtualMethod) Parameters() *Parameters { return v.parameters }

// FunctionMacro is a C preprocessor macro exposed as a function.
type FunctionMacro struct {
	callable
	parameters *Parameters
}

// Parameters returns the parameter list.
func (f *FunctionMacro) Parameters() *Parameters { return f.parameters }

// Callback is a function pointer type.
type Callback struct {
	info
	name        string
	cType       *string
	throws      *bool
	returnValue *ReturnValue
	parameters  *Parameters
}

func (*Callback) isFieldType()     {}
func (*Callback) isCompoundField() {}

// Name returns the callback name.
func (c *Callback) Name() string { return c.name }

// CType returns the C typedef name.
func (c *Callback) CType() string { return str(c.cType) }

// Throws reports whether the callback takes a GError.
func (c *Callback) Throws() bool { return flag(c.throws, false) }

// ReturnValue returns the return value description.
func (c *Callback) ReturnValue() *ReturnValue { return c.returnValue }

// Parameters returns the parameter list.
func (c *Callback) Parameters() *Parameters { return c.parameters }

// Parameters is the parameter list of a callable.
type Parameters struct {
	instance *InstanceParameter
	params   []*Parameter
}

// Instance returns the instance parameter of a method, or nil.
func (p *Parameters) Instance() *InstanceParameter { return p.instance }

// List returns the parameters in declaration order.
func (p *Parameters) List() []*Parameter { return p.params }

// Len returns the number of parameters excluding the instance parameter.
func (p *Parameters) Len() int { return len(p.params) }

// Parameter is one argument of a callable.
type Parameter struct {
	documentation
	attributes
	name            string
	transfer        *TransferOwnership
	nullable        *bool
	allowNone       *bool
	introspectable  *bool
	scope           *FunctionScope
	closure         *uint
	destroy         *uint
	direction       *Direction
	callerAllocates *bool
	optional        *bool
	skip            *bool
	typ             ParameterType
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// TransferOwnership returns the ownership transfer, or "" when absent.
func (p *Parameter) TransferOwnership() TransferOwnership { return enum(p.transfer) }

// IsNullable defaults to false.
func (p *Parameter) IsNullable() bool { return flag(p.nullable, false) }

// AllowNone defaults to false.
func (p *Parameter) AllowNone() bool { return flag(p.allowNone, false) }

// IsIntrospectable defaults to true.
func (p *Parameter) IsIntrospectable() bool { return flag(p.introspectable, true) }

// Scope returns the callback scope, or "" when absent.
func (p *Parameter) Scope() FunctionScope { return enum(p.scope) }

// Closure returns the index of the user data parameter.
func (p *Parameter) Closure() (uint, bool) { return opt(p.closure) }

// Destroy returns the index of the destroy notify parameter.
func (p *Parameter) Destroy() (uint, bool) { return opt(p.destroy) }

// Direction defaults to DirectionIn.
func (p *Parameter) Direction() Direction {
	if p.direction == nil {
		return DirectionIn
	}
	return *p.direction
}

// IsCallerAllocates defaults to false.
func (p *Parameter) IsCallerAllocates() bool { return flag(p.callerAllocates, false) }

// IsOptional defaults to false.
func (p *Parameter) IsOptional() bool { return flag(p.optional, false) }

// IsSkip defaults to false.
func (p *Parameter) IsSkip() bool { return flag(p.skip, false) }

// Type returns the parameter shape, or nil when the element declares none.
func (p *Parameter) Type() ParameterType { return p.typ }

// InstanceParameter is the implicit self argument of a method.
type InstanceParameter struct {
	documentation
	name            string
	transfer        *TransferOwnership
	nullable        *bool
	allowNone       *bool
	direction       *Direction
	callerAllocates *bool
	typ             *Type
}

// Name returns the parameter name.
func (p *InstanceParameter) Name() string { return p.name }

// TransferOwnership returns the ownership transfer, or "" when absent.
func (p *InstanceParameter) TransferOwnership() TransferOwnership { return enum(p.transfer) }

// IsNullable defaults to false.
func (p *InstanceParameter) IsNullable() bool { return flag(p.nullable, false) }

// AllowNone defaults to false.
func (p *InstanceParameter) AllowNone() bool { return flag(p.allowNone, false) }

// Direction defaults to DirectionIn.
func (p *InstanceParameter) Direction() Direction {
	if p.direction == nil {
		return DirectionIn
	}
	return *p.direction
}

// IsCallerAllocates defaults to false.
func (p *InstanceParameter) IsCallerAllocates() bool { return flag(p.callerAllocates, false) }

// Type returns the instance type, or nil.
func (p *InstanceParameter) Type() *Type { return p.typ }

// ReturnValue describes what a callable returns.
type ReturnValue struct {
	documentation
	attributes
	introspectable *bool
	nullable       *bool
	allowNone      *bool
	closure        *uint
	scope          *FunctionScope
	destroy        *uint
	skip           *bool
	transfer       *TransferOwnership
	typ            AnyType
}

// IsIntrospectable defaults to true.
func (r *ReturnValue) IsIntrospectable() bool { return flag(r.introspectable, true) }

// IsNullable defaults to false.
func (r *ReturnValue) IsNullable() bool { return flag(r.nullable, false) }

// AllowNone defaults to false.
func (r *ReturnValue) AllowNone() bool { return flag(r.allowNone, false) }

// Closure returns the index of the user data parameter.
func (r *ReturnValue) Closure() (uint, bool) { return opt(r.closure) }

// Scope returns the callback scope, or "" when absent.
func (r *ReturnValue) Scope() FunctionScope { return enum(r.scope) }

// Destroy returns the index of the destroy notify parameter.
func (r *ReturnValue) Destroy() (uint, bool) { return opt(r.destroy) }

// IsSkip defaults to false.
func (r *ReturnValue) IsSkip() bool { return flag(r.skip, false) }

// TransferOwnership returns the ownership transfer, or "" when absent.
func (r *ReturnValue) TransferOwnership() TransferOwnership { return enum(r.transfer) }

// Type returns the returned type.
func (r *ReturnValue) Type() AnyType { return r.typ }

var (
	functionSpec          = schema.New[Function]("function").Strict()
	functionInlineSpec    = schema.New[Function]("function-inline").Strict()
	constructorSpec       = schema.New[Function]("constructor").Strict()
	methodSpec            = schema.New[Method]("method").Strict()
	methodInlineSpec      = schema.New[Method]("method-inline").Strict()
	virtualMethodSpec     = schema.New[VirtualMethod]("virtual-method")
	functionMacroSpec     = schema.New[FunctionMacro]("function-macro").Strict()
	callbackSpec          = schema.New[Callback]("callback").Strict()
	parametersSpec        = schema.New[Parameters]("parameters").Default(func() *Parameters { return &Parameters{} })
	vfuncParametersSpec   = schema.New[Parameters]("parameters")
	parameterSpec         = schema.New[Parameter]("parameter")
	instanceParameterSpec = schema.New[InstanceParameter]("instance-parameter")
	returnValueSpec       = schema.New[ReturnValue]("return-value").Strict()
)

func init() {
	for _, spec := range []*schema.Spec[Function]{functionSpec, functionInlineSpec, constructorSpec} {
		spec.Define(concat(
			callableFields(func(f *Function) *callable { return &f.callable }),
			[]schema.Field[Function]{
				schema.RequiredChild(returnValueSpec, func(f *Function) **ReturnValue { return &f.returnValue }),
				schema.RequiredChild(parametersSpec, func(f *Function) **Parameters { return &f.parameters }),
			},
		)...)
	}
	for _, spec := range []*schema.Spec[Method]{methodSpec, methodInlineSpec} {
		spec.Define(concat(
			callableFields(func(m *Method) *callable { return &m.callable }),
			[]schema.Field[Method]{
				schema.OptionalAttr("glib:get-property", stringCodec, func(m *Method) **string { return &m.getProperty }),
				schema.OptionalAttr("glib:set-property", stringCodec, func(m *Method) **string { return &m.setProperty }),
				schema.RequiredChild(returnValueSpec, func(m *Method) **ReturnValue { return &m.returnValue }),
				schema.RequiredChild(parametersSpec, func(m *Method) **Parameters { return &m.parameters }),
			},
		)...)
	}
	virtualMethodSpec.Define(concat(
		callableFields(func(v *VirtualMethod) *callable { return &v.callable }),
		[]schema.Field[VirtualMethod]{
			schema.OptionalAttr("invoker", stringCodec, func(v *VirtualMethod) **string { return &v.invoker }),
			schema.RequiredChild(returnValueSpec, func(v *VirtualMethod) **ReturnValue { return &v.returnValue }),
			schema.RequiredChild(vfuncParametersSpec, func(v *VirtualMethod) **Parameters { return &v.parameters }),
		},
	)...)
	functionMacroSpec.Define(concat(
		callableFields(func(f *FunctionMacro) *callable { return &f.callable }),
		[]schema.Field[FunctionMacro]{
			schema.RequiredChild(parametersSpec, func(f *FunctionMacro) **Parameters { return &f.parameters }),
		},
	)...)
	callbackSpec.Define(concat(
		[]schema.Field[Callback]{
			schema.Attr("name", stringCodec, func(c *Callback) *string { return &c.name }),
			schema.OptionalAttr("c:type", stringCodec, func(c *Callback) **string { return &c.cType }),
			schema.OptionalAttr("throws", boolCodec, func(c *Callback) **bool { return &c.throws }),
			schema.RequiredChild(returnValueSpec, func(c *Callback) **ReturnValue { return &c.returnValue }),
			schema.RequiredChild(parametersSpec, func(c *Callback) **Parameters { return &c.parameters }),
		},
		infoFields(func(c *Callback) *info { return &c.info }),
	)...)
	// only virtual-method requires <parameters>
	for _, spec := range []*schema.Spec[Parameters]{parametersSpec, vfuncParametersSpec} {
		spec.Define(
			schema.Child(instanceParameterSpec, func(p *Parameters) **InstanceParameter { return &p.instance }),
			schema.Children(parameterSpec, func(p *Parameters) *[]*Parameter { return &p.params }),
		)
	}
	parameterSpec.Define(concat(
		[]schema.Field[Parameter]{
			schema.Attr("name", stringCodec, func(p *Parameter) *string { return &p.name }),
			schema.OptionalAttr("transfer-ownership", transferCodec, func(p *Parameter) **TransferOwnership { return &p.transfer }),
			schema.OptionalAttr("nullable", boolCodec, func(p *Parameter) **bool { return &p.nullable }),
			schema.OptionalAttr("allow-none", boolCodec, func(p *Parameter) **bool { return &p.allowNone }),
			schema.OptionalAttr("introspectable", boolCodec, func(p *Parameter) **bool { return &p.introspectable }),
			schema.OptionalAttr("scope", scopeCodec, func(p *Parameter) **FunctionScope { return &p.scope }),
			schema.OptionalAttr("closure", indexCodec, func(p *Parameter) **uint { return &p.closure }),
			schema.OptionalAttr("destroy", indexCodec, func(p *Parameter) **uint { return &p.destroy }),
			schema.OptionalAttr("direction", directionCodec, func(p *Parameter) **Direction { return &p.direction }),
			schema.OptionalAttr("caller-allocates", boolCodec, func(p *Parameter) **bool { return &p.callerAllocates }),
			schema.OptionalAttr("optional", boolCodec, func(p *Parameter) **bool { return &p.optional }),
			schema.OptionalAttr("skip", boolCodec, func(p *Parameter) **bool { return &p.skip }),
			schema.Variant(false, func(p *Parameter) *ParameterType { return &p.typ }, parameterTypeCases()...),
		},
		documentationFields(func(p *Parameter) *documentation { return &p.documentation }),
		attributeFields(func(p *Parameter) *attributes { return &p.attributes }),
	)...)
	instanceParameterSpec.Define(concat(
		[]schema.Field[InstanceParameter]{
			schema.Attr("name", stringCodec, func(p *InstanceParameter) *string { return &p.name }),
			schema.OptionalAttr("transfer-ownership", transferCodec, func(p *InstanceParameter) **TransferOwnership { return &p.transfer }),
			schema.OptionalAttr("nullable", boolCodec, func(p *InstanceParameter) **bool { return &p.nullable }),
			schema.OptionalAttr("allow-none", boolCodec, func(p *InstanceParameter) **bool { return &p.allowNone }),
			schema.OptionalAttr("direction", directionCodec, func(p *InstanceParameter) **Direction { return &p.direction }),
			schema.OptionalAttr("caller-allocates", boolCodec, func(p *InstanceParameter) **bool { return &p.callerAllocates }),
			schema.Child(typeSpec, func(p *InstanceParameter) **Type { return &p.typ }),
		},
		documentationFields(func(p *InstanceParameter) *documentation { return &p.documentation }),
	)...)
	returnValueSpec.Define(concat(
		[]schema.Field[ReturnValue]{
			schema.OptionalAttr("introspectable", boolCodec, func(r *ReturnValue) **bool { return &r.introspectable }),
			schema.OptionalAttr("nullable", boolCodec, func(r *ReturnValue) **bool { return &r.nullable }),
			schema.OptionalAttr("allow-none", boolCodec, func(r *ReturnValue) **bool { return &r.allowNone }),
			schema.OptionalAttr("closure", indexCodec, func(r *ReturnValue) **uint { return &r.closure }),
			schema.OptionalAttr("scope", scopeCodec, func(r *ReturnValue) **FunctionScope { return &r.scope }),
			schema.OptionalAttr("destroy", indexCodec, func(r *ReturnValue) **uint { return &r.destroy }),
			schema.OptionalAttr("skip", boolCodec, func(r *ReturnValue) **bool { return &r.skip }),
			schema.OptionalAttr("transfer-ownership", transferCodec, func(r *ReturnValue) **TransferOwnership { return &r.transfer }),
			schema.Variant(true, func(r *ReturnValue) *AnyType { return &r.typ }, anyTypeCases()...),
		},
		documentationFields(func(r *ReturnValue) *documentation { return &r.documentation }),
		attributeFields(func(r *ReturnValue) *attributes { return &r.attributes }),
	)...)
}
