package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreRecord 跨局保存的战绩
type ScoreRecord struct {
	BestScore   int       `yaml:"bestScore"`   // 单局最高击落数
	GamesPlayed int       `yaml:"gamesPlayed"` // 已结束的局数
	GamesWon    int       `yaml:"gamesWon"`    // 击落全部敌机的局数
	TotalKills  int       `yaml:"totalKills"`  // 累计击落数
	LastPlayed  time.Time `yaml:"lastPlayed"`  // 最近一局结束时间
}

// 存储路径常量
const (
	scoreObject   = "scores"
	scoreProperty = "record"
)

// ScoreManager 战绩管理器
// 与 SettingsManager 相同，gdataManager 为 nil 时只在内存中记录
type ScoreManager struct {
	gdataManager *gdata.Manager
	record       ScoreRecord
	now          func() time.Time
}

// NewScoreManager 创建战绩管理器并加载已有战绩
// 加载失败不影响创建，从空战绩开始
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{
		gdataManager: gdataManager,
		now:          time.Now,
	}
	if err := sm.Load(); err != nil {
		log.Printf("[ScoreManager] Warning: Failed to load score record: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载战绩
func (sm *ScoreManager) Load() error {
	sm.record = ScoreRecord{}
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load score record: %w", err)
	}

	var record ScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal score record: %w", err)
	}
	sm.record = record
	return nil
}

// Save 保存战绩到 gdata
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	return nil
}

// RecordGame 记录一局结束的结果并持久化
// 返回本局是否刷新了最高分
func (sm *ScoreManager) RecordGame(gs *GameState) (bool, error) {
	newBest := gs.Score > sm.record.BestScore
	if newBest {
		sm.record.BestScore = gs.Score
	}
	sm.record.GamesPlayed++
	if gs.Won() {
		sm.record.GamesWon++
	}
	sm.record.TotalKills += gs.Score
	sm.record.LastPlayed = sm.now()

	log.Printf("[ScoreManager] Game recorded: score=%d best=%d played=%d",
		gs.Score, sm.record.BestScore, sm.record.GamesPlayed)

	return newBest, sm.Save()
}

// Record 返回当前战绩
func (sm *ScoreManager) Record() ScoreRecord {
	return sm.record
}

// BestScore 返回最高分
func (sm *ScoreManager) BestScore() int {
	return sm.record.BestScore
}
