package rules

import (
	"github.com/Shopify/go-lua"
	"github.com/apframework/core/apperrors"
)

const rulesTypeName = "rules"

type requirement struct {
	location string
	item     string
	count    int
}

// Script is a Provider whose constraints come from a Lua rules chunk
// shipped alongside a mod's capability declaration. The chunk constructs
// and returns a rules object:
//
//	local r = Rules.new()
//	r:require("Boss Room", "Boss Key")
//	r:require_count("Vault", "Coin", 10)
//	r:complete_at("Victory")
//	return r
//
// Directives are captured at load time; nothing touches host state until
// the install hooks run.
type Script struct {
	requirements []requirement
	completion   string
}

// LoadScript evaluates a Lua rules chunk from source.
func LoadScript(src string) (*Script, error) {
	state := newLuaState()
	if err := lua.LoadString(state, src); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeRulesInvalidScript, "load rules script", err)
	}
	return runRulesChunk(state)
}

// LoadScriptFile evaluates a Lua rules chunk from a file.
func LoadScriptFile(path string) (*Script, error) {
	state := newLuaState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeRulesInvalidScript, "load rules script", err)
	}
	return runRulesChunk(state)
}

// InstallAccessRules resolves every referenced location and item against
// the tables and registers one combined predicate per location: all of the
// location's requirements must hold for it to be reachable. Unknown names
// propagate and halt generation.
func (s *Script) InstallAccessRules(ctx Context) error {
	items := ctx.ItemTable()
	for _, req := range s.requirements {
		if !items.Has(req.item) {
			return UnknownItemError(req.item, items)
		}
	}

	perLocation := make(map[string][]requirement)
	var order []string
	for _, req := range s.requirements {
		if _, ok := perLocation[req.location]; !ok {
			order = append(order, req.location)
		}
		perLocation[req.location] = append(perLocation[req.location], req)
	}

	for _, name := range order {
		loc, err := ctx.ResolveLocation(name)
		if err != nil {
			return err
		}
		reqs := perLocation[name]
		loc.SetAccessRule(func(state State) bool {
			for _, r := range reqs {
				if state.Count(r.item) < r.count {
					return false
				}
			}
			return true
		})
	}
	return nil
}

// InstallCompletionRule honors the script's complete_at directive when
// present, otherwise falls back to the default completion-location scan.
func (s *Script) InstallCompletionRule(ctx Context) error {
	if s.completion == "" {
		return NoLogic{}.InstallCompletionRule(ctx)
	}
	if !ctx.LocationTable().Has(s.completion) {
		return UnknownLocationError(s.completion, ctx.LocationTable())
	}
	ctx.SetCompletionLocation(s.completion)
	return nil
}

func newLuaState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerRulesType(state)
	registerRulesConstructor(state)
	return state
}

func runRulesChunk(state *lua.State) (*Script, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeRulesInvalidScript, "run rules script", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, apperrors.New(apperrors.CodeRulesInvalidScript, "rules script must return a Rules object")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	script, ok := ud.(*Script)
	if !ok || script == nil {
		return nil, apperrors.New(apperrors.CodeRulesInvalidScript, "rules script returned an invalid Rules object")
	}
	return script, nil
}

func registerRulesType(state *lua.State) {
	lua.NewMetaTable(state, rulesTypeName)
	state.NewTable()
	lua.SetFunctions(state, rulesMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerRulesConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, rulesConstructor, 0)
	state.SetGlobal("Rules")
}

var rulesConstructor = []lua.RegistryFunction{
	{Name: "new", Function: rulesNew},
}

var rulesMethods = []lua.RegistryFunction{
	{Name: "require", Function: rulesRequire},
	{Name: "require_count", Function: rulesRequireCount},
	{Name: "complete_at", Function: rulesCompleteAt},
}

func rulesNew(state *lua.State) int {
	script := &Script{}
	state.PushUserData(script)
	lua.SetMetaTableNamed(state, rulesTypeName)
	return 1
}

func checkRulesScript(state *lua.State) *Script {
	ud := lua.CheckUserData(state, 1, rulesTypeName)
	if script, ok := ud.(*Script); ok && script != nil {
		return script
	}
	lua.ArgumentError(state, 1, "rules expected")
	return nil
}

func rulesRequire(state *lua.State) int {
	script := checkRulesScript(state)
	location := lua.CheckString(state, 2)
	item := lua.CheckString(state, 3)
	script.requirements = append(script.requirements, requirement{location: location, item: item, count: 1})
	return 0
}

func rulesRequireCount(state *lua.State) int {
	script := checkRulesScript(state)
	location := lua.CheckString(state, 2)
	item := lua.CheckString(state, 3)
	count := lua.CheckInteger(state, 4)
	if count < 1 {
		lua.ArgumentError(state, 4, "count must be at least 1")
		return 0
	}
	script.requirements = append(script.requirements, requirement{location: location, item: item, count: count})
	return 0
}

func rulesCompleteAt(state *lua.State) int {
	script := checkRulesScript(state)
	script.completion = lua.CheckString(state, 2)
	return 0
}
