package paramset

// frame is one entry of the process-wide (per-build) construction stack:
// the key already computed for the node occupying this frame, and the node
// itself (nil only for the permanent sentinel frame at the bottom).
type frame struct {
	key  string
	self Param
}

// registry is the process-wide scaffold described in spec §4.6/§4.7: a
// scoped name stack for computing child keys during construction, combined
// with a weak parent->children map populated as each container node's
// build callback returns. Per DESIGN.md's resolution of the source's open
// question, this collapses the two parallel registries of the original
// into one object; it is not safe for concurrent construction, matching
// the single-builder-thread model in spec §5.
type registry struct {
	stack    []frame
	children map[Param][]Param
}

// defaultRegistry is the single active builder. Schema construction is
// single-threaded and cooperative (see spec §5), so one process-wide
// instance is sufficient; independent schema builds call [ClearRegistry]
// between them.
var defaultRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{
		stack:    []frame{{key: "", self: nil}},
		children: make(map[Param][]Param),
	}
}

func (r *registry) topKey() string  { return r.stack[len(r.stack)-1].key }
func (r *registry) topSelf() Param  { return r.stack[len(r.stack)-1].self }

// push computes local's key from the current top of stack and pushes a new
// frame for self, returning the computed key. Every call must be paired
// with a pop on every exit path, including panics -- callers use defer.
func (r *registry) push(local Name, self Param) string {
	key := childKey(r.topKey(), local)
	r.stack = append(r.stack, frame{key: key, self: self})

	return key
}

func (r *registry) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

// enroll records child as a direct child of parent (nil parent meaning the
// document root). Declaration order is preserved by append order, which
// matches construction order.
func (r *registry) enroll(parent Param, child Param) {
	r.children[parent] = append(r.children[parent], child)
}

// childrenOf returns the direct children registered against p, in
// declaration order.
func (r *registry) childrenOf(p Param) []Param {
	return r.children[p]
}

// parameterKeys performs the public parameter_keys(root) traversal: a
// depth-first, declaration-order walk over the registry's parent->children
// edges, starting at root, concatenating each visited node's own key.
func (r *registry) parameterKeys(root Param) []string {
	var keys []string

	var walk func(p Param)
	walk = func(p Param) {
		keys = append(keys, p.ParamKey())
		for _, c := range r.childrenOf(p) {
			walk(c)
		}
	}

	walk(root)

	return keys
}

// enterScope begins construction of a container node (self): it records
// self's parent, computes self's key from the current top of stack, and
// pushes self's own frame so nested constructions see it as their parent.
// The caller must follow it with runScope to pop that frame once the
// container's child-declaring callback has run.
func enterScope(name Name, self Param) (parent Param, key string) {
	parent = defaultRegistry.topSelf()
	key = defaultRegistry.push(name, self)

	return parent, key
}

// runScope runs build inside the frame pushed by the preceding enterScope
// (or enterBoundScope) call, then pops that frame on every exit path --
// including a panic inside build -- via defer.
func runScope(build func()) {
	defer defaultRegistry.pop()

	build()
}

// resetChildren discards any previously recorded children of p. Used when
// re-deriving a container's children after schema-build time (see
// [Sequence.Bind]'s vector branch), so the replacement set doesn't
// accumulate alongside the stale one.
func (r *registry) resetChildren(p Param) {
	delete(r.children, p)
}

// enterBoundScope pushes self onto the construction stack under its
// already-computed key, so nested constructions see self as their parent.
// Unlike [enterScope] -- which computes a fresh key from whatever frame
// currently sits on top of the stack, appropriate at schema-build time when
// self's container is still mid-construction -- this is for re-entering
// self's own scope after schema-build time has finished and the stack has
// unwound back to the root sentinel, to re-derive self's children (e.g. a
// vector sequence rebuilding its element list in [Sequence.Bind]). self's
// key is already fixed, so it is pushed as-is rather than recomputed; self's
// parent edge was already recorded when self was originally built.
func enterBoundScope(self Param) {
	defaultRegistry.stack = append(defaultRegistry.stack, frame{key: self.ParamKey(), self: self})
}

func (r *registry) clear() {
	r.stack = []frame{{key: "", self: nil}}
	r.children = make(map[Param][]Param)
}

// ParameterKeys returns the canonical, fully-qualified key list for the
// schema tree rooted at root: root.ParamKey() followed by the keys of a
// depth-first, declaration-order traversal of its descendants. It reads the
// registry populated during construction of root's schema tree, so it must
// be called before [ClearRegistry] wipes that tree's entries.
func ParameterKeys(root Param) []string {
	return defaultRegistry.parameterKeys(root)
}

// ClearRegistry wipes the process-wide schema registry. Call it between
// independently-built schemas in the same process; otherwise the registry
// accumulates and ParameterKeys results for later builds leak earlier
// builds' nodes if they happen to share the same node pointers (they
// won't, in practice, since every build allocates fresh nodes) or, more
// importantly, just grows unbounded in memory.
func ClearRegistry() {
	defaultRegistry.clear()
}
