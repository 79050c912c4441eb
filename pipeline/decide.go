package pipeline

import "fmt"

// Availability 标准输入状态，运行时探测，用户不可设置
type Availability int

const (
	// Interactive 标准输入是终端，读取会阻塞在用户身上，视为无数据
	Interactive Availability = iota
	// Piped 标准输入不是终端，可以读取
	Piped
)

func (a Availability) String() string {
	if a == Piped {
		return "piped"
	}
	return "interactive"
}

// Action 决策结果
type Action int

const (
	ActionRandom Action = iota + 1
	ActionNameDerived
	ActionPassthrough
)

func (a Action) String() string {
	switch a {
	case ActionRandom:
		return "random"
	case ActionNameDerived:
		return "name-derived"
	case ActionPassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ReadsInput 该动作是否需要读取标准输入
func (a Action) ReadsInput() bool {
	return a == ActionNameDerived || a == ActionPassthrough
}

// Decide 版本 × 输入状态 决策矩阵：
//
//	unspecified + piped       -> passthrough
//	unspecified + interactive -> random
//	v4          + any         -> random（不读输入）
//	v5          + piped       -> name-derived
//	v5          + interactive -> MissingInput
func Decide(v Version, in Availability) (Action, error) {
	switch v {
	case VersionUnspecified:
		if in == Piped {
			return ActionPassthrough, nil
		}
		return ActionRandom, nil
	case VersionRandom:
		return ActionRandom, nil
	case VersionNameDerived:
		if in == Piped {
			return ActionNameDerived, nil
		}
		return 0, errMissingInput
	default:
		return 0, fmt.Errorf("unknown version %d", int(v))
	}
}
