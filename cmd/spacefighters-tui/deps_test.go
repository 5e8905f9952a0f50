package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/Norlock/space-fighters"

// externalImports 把 dir 及其依赖的本模块包引用的外部包收集到 out（不含测试文件）
func externalImports(t *testing.T, root, dir string, seen map[string]bool, out map[string]bool) {
	t.Helper()
	if seen[dir] {
		return
	}
	seen[dir] = true

	pkgs, err := parser.ParseDir(token.NewFileSet(), dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("ParseDir(%s): %v", dir, err)
	}

	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, imp := range file.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if rel, ok := strings.CutPrefix(path, modulePath+"/"); ok {
					externalImports(t, root, filepath.Join(root, rel), seen, out)
					continue
				}
				out[path] = true
			}
		}
	}
}

// 终端前端只需要 tcell 和 beep，不应链接 ebiten
func TestTerminalLinksNoEbiten(t *testing.T) {
	root := filepath.Join("..", "..")
	imports := map[string]bool{}
	externalImports(t, root, ".", map[string]bool{}, imports)

	if !imports["github.com/gdamore/tcell/v2"] {
		t.Error("Expected tcell among the imports")
	}
	for path := range imports {
		if strings.HasPrefix(path, "github.com/hajimehoshi/ebiten") {
			t.Errorf("spacefighters-tui must not depend on %s", path)
		}
	}
}
