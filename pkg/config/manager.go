package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/junbin-yang/go-fsmkit/pkg/logger"
)

// Manager 通用配置管理器
// 管理嵌入方应用自身的配置：加载、保存、环境变量覆盖和文件热重载
type Manager struct {
	instance         interface{}  // 配置实例（指针）
	configPath       string       // 配置文件路径
	appName          string       // 应用名称，用于默认配置文件名
	serializer       Serializer   // 当前使用的序列化器
	forceFormat      Serializer   // 强制指定的格式（优先级最高）
	supportedFormats []Serializer // 支持的配置格式列表
	defaultPaths     []string     // 默认配置路径模板
	once             sync.Once    // 确保配置只加载一次
	mu               sync.RWMutex // 读写锁
	loadErr          error        // 加载错误

	// 配置监听相关
	enableWatch bool
	debounce    time.Duration
	watcher     *fsnotify.Watcher

	// 配置变更回调
	callbacks []func(old, new interface{})
}

// NewManager 创建配置管理器
// cfg 必须是配置结构体指针
func NewManager(cfg interface{}, options ...Option) *Manager {
	if cfg == nil {
		panic("config instance cannot be nil")
	}
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		panic("config instance must be a pointer")
	}

	m := &Manager{
		instance:         cfg,
		appName:          "app",
		serializer:       &YAMLSerializer{},
		supportedFormats: []Serializer{&YAMLSerializer{}, &JSONSerializer{}, &INISerializer{}},
		defaultPaths: []string{
			"./{{.AppName}}",
			"{{.ExecDir}}/{{.AppName}}",
			"/etc/{{.AppName}}",
		},
		debounce: 500 * time.Millisecond,
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// Load 加载配置文件，只生效一次
// customPath 为空字符串时按默认路径模板查找
func (m *Manager) Load(customPath string) error {
	m.once.Do(func() {
		var err error

		if customPath != "" {
			if err = validatePath(customPath); err != nil {
				m.loadErr = fmt.Errorf("invalid custom config path: %w", err)
				return
			}
			m.configPath = customPath
			m.chooseSerializer(customPath)
		} else {
			if m.configPath, err = m.findDefaultPath(); err != nil {
				m.loadErr = fmt.Errorf("default config not found: %w", err)
				return
			}
		}

		if err = m.parseFile(); err != nil {
			m.loadErr = fmt.Errorf("parse config failed: %w", err)
			return
		}

		applyEnvOverrides(m.instance)

		if m.enableWatch {
			m.mu.Lock()
			err = m.startWatch()
			m.mu.Unlock()
			if err != nil {
				logger.Errorf("config watch start failed: %v", err)
			}
		}
	})

	return m.loadErr
}

// Get 获取配置实例
func (m *Manager) Get() (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.configPath == "" {
		return nil, errors.New("config not loaded, call Load first")
	}
	return m.instance, nil
}

// Save 将当前配置写回文件
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configPath == "" {
		return errors.New("config not loaded")
	}

	data, err := m.serializer.Marshal(m.instance)
	if err != nil {
		return fmt.Errorf("marshal config failed: %w", err)
	}

	// 先写临时文件再替换，避免写坏原文件
	tmpPath := m.configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp config failed: %w", err)
	}
	if err := os.Rename(tmpPath, m.configPath); err != nil {
		return fmt.Errorf("rename temp config failed: %w", err)
	}

	return nil
}

// Reload 重新读取配置文件并触发变更回调
func (m *Manager) Reload() error {
	m.mu.RLock()
	currentPath := m.configPath
	m.mu.RUnlock()

	if currentPath == "" {
		return errors.New("config not loaded")
	}
	if err := validatePath(currentPath); err != nil {
		return fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(currentPath)
	if err != nil {
		return fmt.Errorf("read config file failed: %w", err)
	}

	m.mu.Lock()

	// 解析到新实例，解析失败时不污染旧数据
	newInstance := m.newInstance()
	if err := m.serializer.Unmarshal(data, newInstance); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("unmarshal config failed: %w", err)
	}
	applyEnvOverrides(newInstance)

	oldInstance := m.instance
	m.instance = newInstance
	m.loadErr = nil

	callbacks := make([]func(old, new interface{}), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	// 回调在锁外执行，避免回调内再访问管理器时死锁
	for _, callback := range callbacks {
		callback(oldInstance, newInstance)
	}

	return nil
}

// OnChange 注册配置变更回调，Reload 和热重载都会触发
func (m *Manager) OnChange(callback func(old, new interface{})) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// EnableWatch 动态开关配置文件监听
func (m *Manager) EnableWatch(enable bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enableWatch = enable
	if enable && m.configPath != "" {
		return m.startWatch()
	}
	m.stopWatch()
	return nil
}

// Close 关闭配置管理器，停止监听
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopWatch()
}

/* ------------------------------ 内部方法 ------------------------------ */

// chooseSerializer 按强制格式或文件后缀选择序列化器
func (m *Manager) chooseSerializer(path string) {
	if m.forceFormat != nil {
		m.serializer = m.forceFormat
		return
	}

	ext := filepath.Ext(path)
	for _, format := range m.supportedFormats {
		for _, fe := range format.FileExts() {
			if fe == ext {
				m.serializer = format
				return
			}
		}
	}
	// 无后缀或未识别时沿用默认序列化器
}

// findDefaultPath 按默认路径模板查找配置文件
func (m *Manager) findDefaultPath() (string, error) {
	execPath, _ := os.Executable()
	execDir := filepath.Dir(execPath)

	for _, pathTpl := range m.defaultPaths {
		basePath := replacePathVars(pathTpl, map[string]string{
			"AppName": m.appName,
			"ExecDir": execDir,
		})

		// 先尝试无后缀文件
		if err := validatePath(basePath); err == nil {
			m.chooseSerializer(basePath)
			return basePath, nil
		}

		// 再尝试各格式的后缀
		for _, format := range m.supportedFormats {
			for _, fe := range format.FileExts() {
				fullPath := basePath + fe
				if err := validatePath(fullPath); err == nil {
					m.serializer = format
					return fullPath, nil
				}
			}
		}
	}

	return "", errors.New("no valid config file found (tried default paths and formats)")
}

// startWatch 启动配置文件监听，调用方需持有写锁
func (m *Manager) startWatch() error {
	if m.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher failed: %w", err)
	}
	if err := w.Add(m.configPath); err != nil {
		w.Close()
		return fmt.Errorf("add watch path failed: %w", err)
	}

	m.watcher = w
	go m.watchLoop(w)
	return nil
}

// stopWatch 停止配置文件监听，调用方需持有写锁
func (m *Manager) stopWatch() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

// watchLoop 监听文件变化并做防抖重载
func (m *Manager) watchLoop(w *fsnotify.Watcher) {
	debounceTimer := time.NewTimer(0)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounceTimer.Reset(m.debounce)
			}

		case <-debounceTimer.C:
			if err := m.Reload(); err != nil {
				logger.Errorf("config auto reload failed: %v", err)
			} else {
				logger.Infof("config auto reloaded from: %s", m.configPath)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Errorf("config watch error: %v", err)
		}
	}
}

// parseFile 解析配置文件到配置实例
func (m *Manager) parseFile() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("read file failed: %w", err)
	}

	if err := m.serializer.Unmarshal(data, m.instance); err != nil {
		return fmt.Errorf("unmarshal failed (%s): %w", m.serializer.Name(), err)
	}

	return nil
}

// newInstance 创建同类型的新配置实例
func (m *Manager) newInstance() interface{} {
	val := reflect.ValueOf(m.instance)
	return reflect.New(val.Elem().Type()).Interface()
}
