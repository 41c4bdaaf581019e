package web

import (
	"html/template"
)

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"eq": func(a, b string) bool { return a == b },
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Todo · {{.Heading}}</title>
  <style>
    :root {
      color-scheme: light;
    }
    body {
      margin: 0;
      font-family: "Charter", "Georgia", "Hiragino Mincho ProN", serif;
      color: #2b2520;
      background: radial-gradient(circle at top left, #f4efe3 0%, #fcfaf6 55%, #f6f2e8 100%);
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #d7cdbd;
      background: rgba(255, 255, 255, 0.72);
      backdrop-filter: blur(6px);
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 12px;
    }
    header h1 {
      margin: 0;
      font-size: 20px;
      letter-spacing: 0.02em;
    }
    main {
      display: flex;
      flex-direction: column;
      gap: 18px;
      padding: 18px 24px 28px;
      max-width: 760px;
      margin: 0 auto;
    }
    .pane {
      background: #ffffff;
      border: 1px solid #d7cdbd;
      border-radius: 14px;
      box-shadow: 0 8px 24px rgba(60, 45, 30, 0.08);
      padding: 16px 20px;
    }
    .button-link {
      display: inline-block;
      padding: 6px 12px;
      border-radius: 8px;
      border: 1px solid #cbbfae;
      background: #f7f2e8;
      text-decoration: none;
      color: #2b2520;
      font-size: 14px;
    }
    .item-list {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .list-item {
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 12px;
      padding: 10px 12px;
      border-radius: 10px;
      border: 1px solid #ece4d8;
    }
    .list-item.completed .item-title {
      text-decoration: line-through;
      color: #72685f;
    }
    .item-title {
      font-weight: 600;
      display: block;
    }
    .item-meta {
      color: #72685f;
      font-size: 12px;
    }
    .item-meta.overdue {
      color: #a1332a;
    }
    .form-row {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      align-items: center;
    }
    input[type="text"],
    input[type="search"],
    input[type="date"],
    select {
      padding: 8px 10px;
      border-radius: 8px;
      border: 1px solid #cbbfae;
      font-family: inherit;
      font-size: 14px;
      background: #fffdf9;
      box-sizing: border-box;
    }
    input[type="text"],
    input[type="search"] {
      flex: 1;
      min-width: 200px;
    }
    .actions {
      display: flex;
      gap: 8px;
    }
    button {
      padding: 8px 14px;
      border-radius: 8px;
      border: 1px solid #bfb3a2;
      background: #efe6d7;
      font-family: inherit;
      cursor: pointer;
    }
    button:disabled {
      cursor: not-allowed;
      opacity: 0.5;
    }
    button.danger {
      background: #f4d7d2;
      border-color: #d7a7a1;
    }
    .error {
      padding: 10px 12px;
      border-radius: 8px;
      background: #f7d9d6;
      border: 1px solid #d9a7a2;
      margin-bottom: 12px;
      color: #5b1d17;
    }
    .muted {
      color: #72685f;
    }
    h2 {
      margin: 0 0 12px 0;
      font-size: 17px;
    }
  </style>
</head>
<body>
  <header>
    <h1>Todo</h1>
    <a class="button-link" href="/web/tasks?mode={{.ToggleMode}}{{if .Search}}&q={{.Search}}{{end}}">{{.ToggleLabel}}</a>
  </header>
  <main>
    <section class="pane">
      {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
      <form method="post" action="/web/tasks/create">
        <input type="hidden" name="mode" value="{{.Mode}}">
        <input type="hidden" name="q" value="{{.Search}}">
        <div class="form-row">
          <input id="todo-text" type="text" name="text" value="{{.Form.Text}}" placeholder="{{.Labels.TextPlaceholder}}" maxlength="500"
            oninput="document.getElementById('todo-submit').disabled = this.value.trim() === ''">
          <select id="todo-priority" name="priority">
            {{range .PriorityOptions}}
              <option value="{{.Value}}" {{if eq .Value $.Form.Priority}}selected{{end}}>{{.Label}}</option>
            {{end}}
          </select>
          <input id="todo-due" type="date" name="due" value="{{.Form.Due}}">
          <button id="todo-submit" type="submit" {{if not .CanSubmit}}disabled{{end}}>{{.Labels.Submit}}</button>
        </div>
      </form>
    </section>
    <section class="pane">
      <form method="get" action="/web/tasks">
        <input type="hidden" name="mode" value="{{.Mode}}">
        <div class="form-row">
          <input id="todo-search" type="search" name="q" value="{{.Search}}" placeholder="{{.Labels.SearchPlaceholder}}">
        </div>
      </form>
    </section>
    <section class="pane">
      <h2>{{.Heading}}</h2>
      <ul class="item-list">
        {{range .Items}}
          <li class="list-item {{if .Completed}}completed{{end}}">
            <div>
              <span class="item-title">{{.Text}}</span>
              <span class="item-meta {{.DueKind}}">{{.Due}}</span>
            </div>
            <div class="actions">
              <form method="post" action="/web/tasks/toggle?id={{.ID}}">
                <input type="hidden" name="mode" value="{{$.Mode}}">
                <input type="hidden" name="q" value="{{$.Search}}">
                <input type="hidden" name="completed" value="{{.NextCompleted}}">
                <button type="submit">{{.ActionLabel}}</button>
              </form>
              <form method="post" action="/web/tasks/delete?id={{.ID}}">
                <input type="hidden" name="mode" value="{{$.Mode}}">
                <input type="hidden" name="q" value="{{$.Search}}">
                <button class="danger" type="submit">{{$.Labels.Delete}}</button>
              </form>
            </div>
          </li>
        {{else}}
          <li class="muted">{{.EmptyMessage}}</li>
        {{end}}
      </ul>
    </section>
  </main>
</body>
</html>
`
