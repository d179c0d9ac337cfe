package treeprinter

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// DotPrinter 生成 Graphviz DOT 文本的配置
type DotPrinter[N any] struct {
	Name     string // 图名，默认 tree
	Root     N
	GetChild func(N, Side) N
	GetValue func(N) string
	IsNil    func(N) bool
}

// RenderDot 输出有向图，节点编号按先序分配 n0 n1 ...，边标注 l / r
func RenderDot[N any](p DotPrinter[N]) (string, error) {
	name := p.Name
	if name == "" {
		name = "tree"
	}

	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", fmt.Errorf("设置图名失败: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("设置有向图失败: %w", err)
	}
	if p.IsNil(p.Root) {
		return g.String(), nil
	}

	next := 0
	var add func(n N) (string, error)
	add = func(n N) (string, error) {
		id := fmt.Sprintf("n%d", next)
		next++
		attrs := map[string]string{"label": strconv.Quote(p.GetValue(n))}
		if err := g.AddNode(name, id, attrs); err != nil {
			return "", fmt.Errorf("添加节点 %s 失败: %w", id, err)
		}

		for _, side := range []Side{Left, Right} {
			child := p.GetChild(n, side)
			if p.IsNil(child) {
				continue
			}
			childID, err := add(child)
			if err != nil {
				return "", err
			}
			edge := map[string]string{"label": strconv.Quote(string(side[:1]))}
			if err := g.AddEdge(id, childID, true, edge); err != nil {
				return "", fmt.Errorf("添加边 %s->%s 失败: %w", id, childID, err)
			}
		}
		return id, nil
	}

	if _, err := add(p.Root); err != nil {
		return "", err
	}
	return g.String(), nil
}
